package models

// SyncResponse bundles everything the client needs after login in one
// round trip. FirstLogin signals that a default profile was just created
// and the client should route to profile setup.
type SyncResponse struct {
	Profile    *Profile   `json:"profile"`
	Clients    []*Client  `json:"clients"`
	Services   []*Service `json:"services"`
	Quotes     []*Quote   `json:"quotes"`
	FirstLogin bool       `json:"first_login"`
}
