package accounts

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/trebuchet-org/deploycfg/internal/domain/config"
)

// Address returns the account address controlled by a hex private key
func Address(privateKeyHex string) (common.Address, error) {
	key, err := crypto.HexToECDSA(config.TrimHexPrefix(privateKeyHex))
	if err != nil {
		return common.Address{}, fmt.Errorf("failed to parse private key: %w", err)
	}
	return crypto.PubkeyToAddress(key.PublicKey), nil
}

// Deriver computes signer addresses for a network descriptor
type Deriver struct{}

// NewDeriver creates a new Deriver
func NewDeriver() *Deriver {
	return &Deriver{}
}

// Count returns how many signer accounts a network has
func (d *Deriver) Count(network *config.Network) int {
	if network.HDAccounts != nil {
		return network.HDAccounts.Count
	}
	return len(network.Accounts)
}

// AddressAt returns the address at index in the network's signer set.
// ok is false when index is past the end of the set.
func (d *Deriver) AddressAt(network *config.Network, index int) (addr common.Address, ok bool, err error) {
	if index < 0 || index >= d.Count(network) {
		return common.Address{}, false, nil
	}

	if hd := network.HDAccounts; hd != nil {
		key, err := Derive(hd.Mnemonic, hd.Path, uint32(index)) //nolint:gosec // bounded by Count
		if err != nil {
			return common.Address{}, false, err
		}
		return crypto.PubkeyToAddress(key.PublicKey), true, nil
	}

	addr, err = Address(network.Accounts[index])
	if err != nil {
		return common.Address{}, false, err
	}
	return addr, true, nil
}
