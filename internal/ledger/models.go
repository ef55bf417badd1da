package ledger

// MintCall is a certificate issuance for one attestation.
type MintCall struct {
	To        string
	ContentID string
	KWh       string
}

// SignedTx is a transaction ready for broadcast. Raw is the canonical
// encoding; rebroadcasting it can never produce a second transaction.
type SignedTx struct {
	Hash  string
	Raw   []byte
	Nonce uint64
}

type Receipt struct {
	Hash        string
	Succeeded   bool
	BlockNumber uint64
}

type receiptResult struct {
	Receipt Receipt
	Error   error
}
