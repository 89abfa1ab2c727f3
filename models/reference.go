package models

// IPCSection is a reference entry describing an Indian Penal Code section.
type IPCSection struct {
	ID           string `bson:"id" json:"id"`
	Number       string `bson:"number" json:"number"`
	Title        string `bson:"title" json:"title"`
	Description  string `bson:"description" json:"description"`
	Punishment   string `bson:"punishment" json:"punishment"`
	IsCognizable bool   `bson:"isCognizable" json:"isCognizable"`
	IsBailable   bool   `bson:"isBailable" json:"isBailable"`
}

// LegalRight is a public reference entry describing a complainant's right.
type LegalRight struct {
	ID          string `bson:"id" json:"id"`
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description" json:"description"`
	Section     string `bson:"section" json:"section"`
}

// Location is a latitude/longitude pair.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// PoliceStation is a static directory entry.
type PoliceStation struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Address  string   `json:"address"`
	Phone    string   `json:"phone"`
	Location Location `json:"location"`
}
