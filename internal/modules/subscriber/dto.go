package subscriber

// SubscribeRequest is the body for POST /subscribers. Source tags which
// page collected the address ("footer", "blueprints", ...).
type SubscribeRequest struct {
	Email      string `json:"email" binding:"required,email"`
	Name       string `json:"name"`
	RememberMe bool   `json:"remember_me"`
	Source     string `json:"source"`
}
