package ledger

// CertificateABI is the slice of the certificate registry contract used for
// minting.
const CertificateABI = `[
	{
		"type": "function",
		"name": "issueCertificate",
		"stateMutability": "nonpayable",
		"inputs": [
			{"name": "to", "type": "address"},
			{"name": "cid", "type": "bytes"},
			{"name": "kwh", "type": "string"}
		],
		"outputs": [
			{"name": "certificateId", "type": "uint256"}
		]
	}
]`

const issueCertificate = "issueCertificate"
