package dto

import "FileNest/model"

// ShareResponse is the result of minting (or re-reading) a share link.
type ShareResponse struct {
	Token    string `json:"token"`
	ShareURL string `json:"shareUrl"`
}

// MeResponse reports the caller's session state.
type MeResponse struct {
	Authenticated bool           `json:"authenticated"`
	User          *model.Profile `json:"user"`
}
