package dto

// AdResponse describes the ad selected for the current watch session
type AdResponse struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	MediaURL string `json:"media_url"`
}

// RewardStateResponse is the watch-and-earn flow as rendered to clients
type RewardStateResponse struct {
	State     string      `json:"state"`
	Remaining int         `json:"remaining"`
	Ad        *AdResponse `json:"ad,omitempty"`
}

// ClaimResponse is returned after a successful reward claim
type ClaimResponse struct {
	Claimed      int `json:"claimed"`
	CreditsTotal int `json:"credits_total"`
}
