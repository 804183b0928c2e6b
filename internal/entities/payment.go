package entities

type Payment struct {
	IsPaid bool
	// Proof is the storage reference of the uploaded proof of payment.
	Proof string
}
