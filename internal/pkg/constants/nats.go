package constants

// NATS Subjects
const (
	SubjectPurchasePaid     = "commerce.purchase.paid"
	SubjectAffiliateCreated = "commerce.affiliate.created"
	SubjectOTPRequested     = "commerce.otp.requested"
	SubjectPasswordReset    = "commerce.password.reset"
)
