package model

import (
	"fmt"
	"time"
)

// RequestType is the role a user asks to be upgraded to.
type RequestType string

const (
	RequestChef  RequestType = "chef"
	RequestAdmin RequestType = "admin"
)

// ParseRequestType maps a string onto the closed request-type set.
func ParseRequestType(s string) (RequestType, error) {
	switch RequestType(s) {
	case RequestChef, RequestAdmin:
		return RequestType(s), nil
	default:
		return "", fmt.Errorf("unknown request type %q", s)
	}
}

// RequestStatus is the moderation state of a role-upgrade request.
type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestAccepted RequestStatus = "accepted"
	RequestRejected RequestStatus = "rejected"
)

// RequestAction is an admin decision on a pending request.
type RequestAction string

const (
	ActionAccept RequestAction = "accept"
	ActionReject RequestAction = "reject"
)

// ParseRequestAction maps a string onto the closed action set.
func ParseRequestAction(s string) (RequestAction, error) {
	switch RequestAction(s) {
	case ActionAccept, ActionReject:
		return RequestAction(s), nil
	default:
		return "", fmt.Errorf("unknown request action %q", s)
	}
}

// RoleRequest is a user's pending ask to become a chef or admin,
// moderated by admins.
type RoleRequest struct {
	ID          string        `json:"_id"`
	UserName    string        `json:"userName"`
	UserEmail   string        `json:"userEmail"`
	RequestType RequestType   `json:"requestType"`
	Status      RequestStatus `json:"requestStatus"`
	RequestedAt time.Time     `json:"requestTime"`
}
