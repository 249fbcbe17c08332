package common

// RequestIDHeaderName is the gRPC metadata key (and lowercased HTTP header)
// carrying the per-call request id.
const RequestIDHeaderName = "x-request-id"

// MonthlyPaymentPeriods is the amortization horizon used to turn a listing
// price into an estimated monthly payment.
const MonthlyPaymentPeriods = 72
