package common

const (
	// DEPOSIT name to identify the deposit command
	DEPOSIT = "deposit"
	// ESTIMATE name to identify the estimate command (no transactions are sent)
	ESTIMATE = "estimate"
	// BRIDGER name to identify the erc20 bridger module in logs
	BRIDGER = "erc20bridger"
	// TXSENDER name to identify the tx sender module in logs
	TXSENDER = "txsender"
	// SIGNER name to identify the signer module in logs
	SIGNER = "signer"
)
