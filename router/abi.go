package router

// L1GatewayRouterABI is the subset of the Arbitrum L1GatewayRouter interface used for deposits
const L1GatewayRouterABI = `[
	{"type":"function","name":"getGateway","stateMutability":"view",
	 "inputs":[{"name":"_token","type":"address"}],
	 "outputs":[{"name":"gateway","type":"address"}]},
	{"type":"function","name":"defaultGateway","stateMutability":"view",
	 "inputs":[],
	 "outputs":[{"name":"","type":"address"}]},
	{"type":"function","name":"l1TokenToGateway","stateMutability":"view",
	 "inputs":[{"name":"","type":"address"}],
	 "outputs":[{"name":"","type":"address"}]},
	{"type":"function","name":"calculateL2TokenAddress","stateMutability":"view",
	 "inputs":[{"name":"l1ERC20","type":"address"}],
	 "outputs":[{"name":"","type":"address"}]},
	{"type":"function","name":"outboundTransfer","stateMutability":"payable",
	 "inputs":[
		{"name":"_token","type":"address"},
		{"name":"_to","type":"address"},
		{"name":"_amount","type":"uint256"},
		{"name":"_maxGas","type":"uint256"},
		{"name":"_gasPriceBid","type":"uint256"},
		{"name":"_data","type":"bytes"}],
	 "outputs":[{"name":"","type":"bytes"}]},
	{"type":"function","name":"outboundTransferCustomRefund","stateMutability":"payable",
	 "inputs":[
		{"name":"_token","type":"address"},
		{"name":"_refundTo","type":"address"},
		{"name":"_to","type":"address"},
		{"name":"_amount","type":"uint256"},
		{"name":"_maxGas","type":"uint256"},
		{"name":"_gasPriceBid","type":"uint256"},
		{"name":"_data","type":"bytes"}],
	 "outputs":[{"name":"","type":"bytes"}]}
]`
