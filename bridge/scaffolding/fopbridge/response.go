package fopbridge

import "encoding/json"

// RecordID is the data model used when returning a created record's id.
type RecordID struct {
	ID      int    `json:"id"`
	Message string `json:"message"`
}

func NewRecordID(id int, message string) RecordID {
	return RecordID{ID: id, Message: message}
}

func (r RecordID) Encode() ([]byte, string, error) {
	data, err := json.Marshal(r)
	return data, "application/json; charset=utf-8", err
}

// MessageResponse confirms an operation that returns no record.
type MessageResponse struct {
	Message string `json:"message"`
}

func NewMessageResponse(message string) MessageResponse {
	return MessageResponse{Message: message}
}

func (m MessageResponse) Encode() ([]byte, string, error) {
	data, err := json.Marshal(m)
	return data, "application/json; charset=utf-8", err
}
