package models

// State is one entry of the GET /State/list reference endpoint.
type State struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

// City is one entry of the GET /City/list reference endpoint.
type City struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	StateID int64  `json:"stateId"`
}
