package auth

// Decision is the outcome of a guard evaluation for one navigation attempt.
type Decision string

const (
	DecisionAllowed           Decision = "allowed"
	DecisionRedirectLogin     Decision = "redirect-login"
	DecisionRedirectForbidden Decision = "redirect-forbidden"
)

// Evaluate decides whether the session may reach a view gated by the given
// capability. Authentication is always checked before authorization: an
// unauthenticated caller is sent to login even when the capability check
// would also fail. An empty capability only requires authentication.
func Evaluate(session *Session, capability Capability) Decision {
	if session == nil || !session.IsAuthenticated() {
		return DecisionRedirectLogin
	}
	if capability != "" && !session.HasPermission(capability) {
		return DecisionRedirectForbidden
	}
	return DecisionAllowed
}
