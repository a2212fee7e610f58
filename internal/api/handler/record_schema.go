package handler

import (
	"fmt"
	"time"

	"github.com/voxdigify/crm-api/internal/core/domain"
)

// Create-request schemas for the CRM entities. All declared fields are
// required at creation; identifiers are always server-generated.

type createLeadRequest struct {
	Name    string `json:"name"    validate:"required"`
	Company string `json:"company" validate:"required"`
	Email   string `json:"email"   validate:"required,email"`
	Phone   string `json:"phone"   validate:"required"`
	Source  string `json:"source"  validate:"required"`
	Owner   string `json:"owner"   validate:"required"`
}

func (r createLeadRequest) ToDomain() (domain.Lead, error) {
	return domain.Lead{
		Name:    r.Name,
		Company: r.Company,
		Email:   r.Email,
		Phone:   r.Phone,
		Source:  r.Source,
		Owner:   r.Owner,
	}, nil
}

type createContactRequest struct {
	ContactName string `json:"contactName" validate:"required"`
	AccountName string `json:"accountName" validate:"required"`
	Email       string `json:"email"       validate:"required,email"`
	Phone       string `json:"phone"       validate:"required"`
	Owner       string `json:"owner"       validate:"required"`
}

func (r createContactRequest) ToDomain() (domain.Contact, error) {
	return domain.Contact{
		ContactName: r.ContactName,
		AccountName: r.AccountName,
		Email:       r.Email,
		Phone:       r.Phone,
		Owner:       r.Owner,
	}, nil
}

type createAccountRequest struct {
	AccountName  string `json:"accountName"  validate:"required"`
	Phone        string `json:"phone"        validate:"required"`
	Website      string `json:"website"      validate:"required"`
	AccountOwner string `json:"accountOwner" validate:"required"`
}

func (r createAccountRequest) ToDomain() (domain.Account, error) {
	return domain.Account{
		AccountName:  r.AccountName,
		Phone:        r.Phone,
		Website:      r.Website,
		AccountOwner: r.AccountOwner,
	}, nil
}

type createCallRequest struct {
	Subject       string `json:"subject"       validate:"required"`
	CallType      string `json:"callType"      validate:"required"`
	CallStartTime string `json:"callStartTime" validate:"required"`
	CallDuration  int    `json:"callDuration"  validate:"required,gt=0"`
	RelatedTo     string `json:"relatedTo"     validate:"required"`
	ContactName   string `json:"contactName"   validate:"required"`
	CallOwner     string `json:"callOwner"     validate:"required"`
}

func (r createCallRequest) ToDomain() (domain.Call, error) {
	now := time.Now().UTC()
	return domain.Call{
		Subject:       r.Subject,
		CallType:      r.CallType,
		CallStartTime: r.CallStartTime,
		CallDuration:  r.CallDuration,
		RelatedTo:     r.RelatedTo,
		ContactName:   r.ContactName,
		CallOwner:     r.CallOwner,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

type createMeetingRequest struct {
	Title       string `json:"title"       validate:"required"`
	From        string `json:"from"        validate:"required"`
	To          string `json:"to"          validate:"required"`
	RelatedTo   string `json:"relatedTo"   validate:"required"`
	ContactName string `json:"contactName" validate:"required"`
	Host        string `json:"host"        validate:"required"`
}

func (r createMeetingRequest) ToDomain() (domain.Meeting, error) {
	from, err := parseMeetingTime(r.From)
	if err != nil {
		return domain.Meeting{}, fmt.Errorf("from: %w", err)
	}
	to, err := parseMeetingTime(r.To)
	if err != nil {
		return domain.Meeting{}, fmt.Errorf("to: %w", err)
	}
	return domain.Meeting{
		Title:       r.Title,
		From:        from,
		To:          to,
		RelatedTo:   r.RelatedTo,
		ContactName: r.ContactName,
		Host:        r.Host,
	}, nil
}

// meetingTimeLayouts accepts both RFC3339 and the datetime-local format the
// original forms submit.
var meetingTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

func parseMeetingTime(s string) (time.Time, error) {
	for _, layout := range meetingTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised time %q", s)
}
