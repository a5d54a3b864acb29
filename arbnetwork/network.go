package arbnetwork

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

var (
	ErrNetworkAlreadyRegistered = errors.New("network already registered")
	ErrNetworkNotFound          = errors.New("network not found")
	ErrInvalidNetwork           = errors.New("invalid L2 network descriptor")
)

// EthBridge are the core rollup contracts deployed on the parent chain
type EthBridge struct {
	Bridge         common.Address `json:"bridge" mapstructure:"Bridge"`
	Inbox          common.Address `json:"inbox" mapstructure:"Inbox"`
	SequencerInbox common.Address `json:"sequencerInbox" mapstructure:"SequencerInbox"`
	Outbox         common.Address `json:"outbox" mapstructure:"Outbox"`
	Rollup         common.Address `json:"rollup" mapstructure:"Rollup"`
}

// TokenBridge are the token bridge contracts on both chains
type TokenBridge struct {
	L1GatewayRouter common.Address `json:"l1GatewayRouter" mapstructure:"L1GatewayRouter"`
	L2GatewayRouter common.Address `json:"l2GatewayRouter" mapstructure:"L2GatewayRouter"`
	L1ERC20Gateway  common.Address `json:"l1ERC20Gateway" mapstructure:"L1ERC20Gateway"`
	L2ERC20Gateway  common.Address `json:"l2ERC20Gateway" mapstructure:"L2ERC20Gateway"`
	L1CustomGateway common.Address `json:"l1CustomGateway" mapstructure:"L1CustomGateway"`
	L2CustomGateway common.Address `json:"l2CustomGateway" mapstructure:"L2CustomGateway"`
	L1WethGateway   common.Address `json:"l1WethGateway" mapstructure:"L1WethGateway"`
	L2WethGateway   common.Address `json:"l2WethGateway" mapstructure:"L2WethGateway"`
	L1Weth          common.Address `json:"l1Weth" mapstructure:"L1Weth"`
	L2Weth          common.Address `json:"l2Weth" mapstructure:"L2Weth"`
	L1ProxyAdmin    common.Address `json:"l1ProxyAdmin" mapstructure:"L1ProxyAdmin"`
	L2ProxyAdmin    common.Address `json:"l2ProxyAdmin" mapstructure:"L2ProxyAdmin"`
	L1MultiCall     common.Address `json:"l1MultiCall" mapstructure:"L1MultiCall"`
	L2Multicall     common.Address `json:"l2Multicall" mapstructure:"L2Multicall"`
}

// L2Network describes an Orbit chain and the contracts needed to bridge into it
type L2Network struct {
	ChainID        uint64 `json:"chainID" mapstructure:"ChainID"`
	PartnerChainID uint64 `json:"partnerChainID" mapstructure:"PartnerChainID"`
	Name           string `json:"name" mapstructure:"Name"`
	ExplorerURL    string `json:"explorerUrl" jsonschema:"omitempty" mapstructure:"ExplorerURL"`

	ConfirmPeriodBlocks      uint64 `json:"confirmPeriodBlocks" mapstructure:"ConfirmPeriodBlocks"`
	RetryableLifetimeSeconds uint64 `json:"retryableLifetimeSeconds" mapstructure:"RetryableLifetimeSeconds"`
	NitroGenesisBlock        uint64 `json:"nitroGenesisBlock" mapstructure:"NitroGenesisBlock"`
	NitroGenesisL1Block      uint64 `json:"nitroGenesisL1Block" mapstructure:"NitroGenesisL1Block"`
	// DepositTimeout in milliseconds
	DepositTimeout uint64 `json:"depositTimeout" mapstructure:"DepositTimeout"`

	IsCustom   bool `json:"isCustom" mapstructure:"IsCustom"`
	IsArbitrum bool `json:"isArbitrum" mapstructure:"IsArbitrum"`

	EthBridge   EthBridge   `json:"ethBridge" mapstructure:"EthBridge"`
	TokenBridge TokenBridge `json:"tokenBridge" mapstructure:"TokenBridge"`
}

// Validate checks the fields the deposit flow depends on
func (n L2Network) Validate() error {
	switch {
	case n.ChainID == 0:
		return fmt.Errorf("%w: chainID is zero", ErrInvalidNetwork)
	case n.PartnerChainID == 0:
		return fmt.Errorf("%w: partnerChainID is zero", ErrInvalidNetwork)
	case n.ChainID == n.PartnerChainID:
		return fmt.Errorf("%w: chainID and partnerChainID are both %d", ErrInvalidNetwork, n.ChainID)
	case n.EthBridge.Inbox == (common.Address{}):
		return fmt.Errorf("%w: ethBridge.inbox is zero", ErrInvalidNetwork)
	case n.TokenBridge.L1GatewayRouter == (common.Address{}):
		return fmt.Errorf("%w: tokenBridge.l1GatewayRouter is zero", ErrInvalidNetwork)
	}
	return nil
}

// IsEmpty is true for a zero value descriptor, i.e. none was configured
func (n L2Network) IsEmpty() bool {
	return n.ChainID == 0 && n.PartnerChainID == 0 && n.EthBridge == (EthBridge{})
}

func (n L2Network) String() string {
	return fmt.Sprintf("%s(chainID: %d, parent: %d, router: %s)",
		n.Name, n.ChainID, n.PartnerChainID, n.TokenBridge.L1GatewayRouter.Hex())
}
