package models

import "time"

// RegisteredBy identifies the police officer who created or last touched a
// pre-registration.
type RegisteredBy struct {
	ID   string `bson:"id" json:"id"`
	Name string `bson:"name" json:"name"`
}

// Victim is a verified complainant account. It is created either directly on
// self-signup after OTP verification, or by promoting a pre-registered record.
type Victim struct {
	ID              string                 `bson:"id" json:"id"`
	Name            string                 `bson:"name" json:"name"`
	Phone           string                 `bson:"phone" json:"phone"`
	Role            string                 `bson:"role" json:"role"`
	Address         string                 `bson:"address,omitempty" json:"address,omitempty"`
	IDProof         string                 `bson:"id_proof,omitempty" json:"id_proof,omitempty"`
	Verified        bool                   `bson:"verified" json:"verified"`
	PreRegistered   bool                   `bson:"pre_registered" json:"pre_registered"`
	PreRegisteredBy *RegisteredBy          `bson:"pre_registered_by,omitempty" json:"pre_registered_by,omitempty"`
	PreRegisteredAt *time.Time             `bson:"pre_registered_at,omitempty" json:"pre_registered_at,omitempty"`
	AdditionalInfo  map[string]interface{} `bson:"additional_info,omitempty" json:"additional_info,omitempty"`
	CreatedAt       time.Time              `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time              `bson:"updated_at" json:"updated_at"`
}

// PreRegisteredVictim is a victim record created by police before the victim
// has ever authenticated. It never authenticates directly; on first successful
// OTP verification it is promoted into a Victim and retained for audit.
type PreRegisteredVictim struct {
	ID           string        `bson:"id" json:"id"`
	Name         string        `bson:"name" json:"name"`
	Phone        string        `bson:"phone" json:"phone"`
	Address      string        `bson:"address,omitempty" json:"address,omitempty"`
	IDProof      string        `bson:"id_proof,omitempty" json:"id_proof,omitempty"`
	RegisteredBy *RegisteredBy `bson:"registered_by,omitempty" json:"registered_by,omitempty"`
	UpdatedBy    *RegisteredBy `bson:"updated_by,omitempty" json:"updated_by,omitempty"`
	CreatedAt    time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt    *time.Time    `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
	PromotedAt   *time.Time    `bson:"promoted_at,omitempty" json:"promoted_at,omitempty"`
}
