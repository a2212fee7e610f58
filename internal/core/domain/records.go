package domain

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrRecordNotFound = errors.New("record not found")

// Record constrains the flat CRM entity types (Lead, Contact, Account, Call,
// Meeting). WithID returns a copy of the record carrying the generated
// identifier, letting the repository layer stay generic over entity types.
type Record[T any] interface {
	WithID(id primitive.ObjectID) T
}

// Lead is a prospective customer. Source is the free-text grouping field used
// by the lead summary report.
type Lead struct {
	ID      primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name    string             `json:"name" bson:"name"`
	Company string             `json:"company" bson:"company"`
	Email   string             `json:"email" bson:"email"`
	Phone   string             `json:"phone" bson:"phone"`
	Source  string             `json:"source" bson:"source"`
	Owner   string             `json:"owner" bson:"owner"`
}

func (l Lead) WithID(id primitive.ObjectID) Lead { l.ID = id; return l }

// Contact is a person attached to an account. AccountName is free text, not a
// managed relationship.
type Contact struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	ContactName string             `json:"contactName" bson:"contactName"`
	AccountName string             `json:"accountName" bson:"accountName"`
	Email       string             `json:"email" bson:"email"`
	Phone       string             `json:"phone" bson:"phone"`
	Owner       string             `json:"owner" bson:"owner"`
}

func (c Contact) WithID(id primitive.ObjectID) Contact { c.ID = id; return c }

// Account is a client organisation.
type Account struct {
	ID           primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	AccountName  string             `json:"accountName" bson:"accountName"`
	Phone        string             `json:"phone" bson:"phone"`
	Website      string             `json:"website" bson:"website"`
	AccountOwner string             `json:"accountOwner" bson:"accountOwner"`
}

func (a Account) WithID(id primitive.ObjectID) Account { a.ID = id; return a }

// Call is a logged phone call. CallStartTime is stored as the string supplied
// by the client (datetime-local format), matching the upstream data.
type Call struct {
	ID            primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Subject       string             `json:"subject" bson:"subject"`
	CallType      string             `json:"callType" bson:"callType"`
	CallStartTime string             `json:"callStartTime" bson:"callStartTime"`
	CallDuration  int                `json:"callDuration" bson:"callDuration"`
	RelatedTo     string             `json:"relatedTo" bson:"relatedTo"`
	ContactName   string             `json:"contactName" bson:"contactName"`
	CallOwner     string             `json:"callOwner" bson:"callOwner"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt"`
}

func (c Call) WithID(id primitive.ObjectID) Call { c.ID = id; return c }

// Meeting is a scheduled meeting. Host is the grouping field for the meeting
// summary report.
type Meeting struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	From        time.Time          `json:"from" bson:"from"`
	To          time.Time          `json:"to" bson:"to"`
	RelatedTo   string             `json:"relatedTo" bson:"relatedTo"`
	ContactName string             `json:"contactName" bson:"contactName"`
	Host        string             `json:"host" bson:"host"`
}

func (m Meeting) WithID(id primitive.ObjectID) Meeting { m.ID = id; return m }
