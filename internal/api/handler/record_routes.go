package handler

import (
	"github.com/voxdigify/crm-api/internal/core/domain"
	"github.com/voxdigify/crm-api/internal/core/ports"
)

// Per-entity constructors binding each create-request schema to its handler.

func NewLeadHandler(s ports.RecordService[domain.Lead]) *RecordHandler[createLeadRequest, domain.Lead] {
	return NewRecordHandler(s, "Lead", createLeadRequest.ToDomain)
}

func NewContactHandler(s ports.RecordService[domain.Contact]) *RecordHandler[createContactRequest, domain.Contact] {
	return NewRecordHandler(s, "Contact", createContactRequest.ToDomain)
}

func NewAccountHandler(s ports.RecordService[domain.Account]) *RecordHandler[createAccountRequest, domain.Account] {
	return NewRecordHandler(s, "Client", createAccountRequest.ToDomain)
}

func NewCallHandler(s ports.RecordService[domain.Call]) *RecordHandler[createCallRequest, domain.Call] {
	return NewRecordHandler(s, "Call", createCallRequest.ToDomain)
}

func NewMeetingHandler(s ports.RecordService[domain.Meeting]) *RecordHandler[createMeetingRequest, domain.Meeting] {
	return NewRecordHandler(s, "Meeting", createMeetingRequest.ToDomain)
}
