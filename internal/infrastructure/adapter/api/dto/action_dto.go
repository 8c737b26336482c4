package dto

// ActionRequest carries the optional return path preserved across the
// sign-in redirect
type ActionRequest struct {
	ReturnPath string `json:"return_path"`
}

// ActionResponse is the terminal state of a copy or unlock invocation.
// PromptText is only present on a successful copy; the client places it on
// the user's clipboard.
type ActionResponse struct {
	Status           string `json:"status"`
	Message          string `json:"message"`
	CreditsRemaining int    `json:"credits_remaining,omitempty"`
	Required         int    `json:"required,omitempty"`
	Available        int    `json:"available,omitempty"`
	OfferReward      bool   `json:"offer_reward,omitempty"`
	SignInRedirect   string `json:"sign_in_redirect,omitempty"`
	PromptText       string `json:"prompt_text,omitempty"`
}
