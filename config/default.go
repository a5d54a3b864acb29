package config

// This values doesnt have a default value because depend on the
// environment / deployment
const DefaultMandatoryVars = `
L1URL = "http://localhost:8545"
L2URL = "http://localhost:8547"
`

// This doesnt below to config, but are the vars used
// to avoid repetition in config-files
const DefaultVars = `
PathRWData = "/tmp/depositkit"
`

// DefaultValues is the default configuration
const DefaultValues = `
[Log]
Environment = "development" # "production" or "development"
Level = "info"
Outputs = ["stderr"]

[L1]
URL = "{{L1URL}}"

[L2]
URL = "{{L2URL}}"

[Signer]
Method = "privkey"

[Deposit]
TokenAddr = "0x1c7D4B196Cb0C7B01d743Fbc6116a902379C7238"
RouterAddr = "0xf446986e261E84aB2A55159F3Fba60F7E8AeDdAF"
Amount = "1000000"
RequireRouterMatch = false
	[Deposit.GasEstimation]
	GasLimitPercentIncrease = 0
	MinGasLimit = 0
	MaxFeePerGasPercentIncrease = 500
	MaxSubmissionFeePercentIncrease = 300

[TxSender]
Mode = "direct"
GasOffset = 0
GasLimitMultiplier = 1
WaitTxToBeMinedTimeout = "0s"
WaitPeriodMonitorTx = "1s"
	[TxSender.EthTxManager]
		FrequencyToMonitorTxs = "1s"
		WaitTxToBeMined = "2s"
		GetReceiptMaxTime = "250ms"
		GetReceiptWaitInterval = "1s"
		PrivateKeys = [
			{Path = "{{PathRWData}}/depositor.keystore", Password = "testonly"},
		]
		ForcedGas = 0
		GasPriceMarginFactor = 1
		MaxGasPriceLimit = 0
		StoragePath = "{{PathRWData}}/ethtxmanager-depositor.sqlite"
		ReadPendingL1Txs = false
		SafeStatusL1NumberOfBlocks = 5
		FinalizedStatusL1NumberOfBlocks = 10
			[TxSender.EthTxManager.Etherman]
				# empty URL uses L1.URL
				URL = ""
				MultiGasProvider = false
				# L1ChainID = 0 indicates it will be set at runtime
				L1ChainID = 0
				HTTPHeaders = []

[Prometheus]
Enabled = false
PushGatewayURL = ""
JobName = "depositkit"
`
