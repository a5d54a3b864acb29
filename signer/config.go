package signer

const (
	// MethodPrivateKey signs with a raw hex private key (DEVNET_PRIVKEY)
	MethodPrivateKey = "privkey"
	// MethodLocal signs with a go-ethereum keystore file, Path and Password under [Signer]
	MethodLocal = "local"
	// MethodWeb3Signer delegates signing to a web3signer, URL and Address under [Signer]
	MethodWeb3Signer = "web3signer"
)

type SignerConfig struct {
	Method string `jsonschema:"enum=privkey, enum=local, enum=web3signer" mapstructure:"Method"`
	// PrivateKey is used by the privkey method, hex encoded with or without 0x prefix
	PrivateKey string `jsonschema:"omitempty" mapstructure:"PrivateKey"`
	// Config is handed to go_signer by the local and web3signer methods
	Config map[string]interface{} `jsonschema:"omitempty" mapstructure:",remain"`
}
