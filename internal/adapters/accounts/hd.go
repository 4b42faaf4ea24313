package accounts

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/cosmos/go-bip39"
	gethaccounts "github.com/ethereum/go-ethereum/accounts"
)

// ErrInvalidMnemonic is returned for a mnemonic that fails the BIP-39 checksum
var ErrInvalidMnemonic = errors.New("invalid mnemonic")

// Derive returns the private key at path/index for a BIP-39 mnemonic.
// path is the parent derivation path, e.g. m/44'/60'/0'/0.
func Derive(mnemonic, path string, index uint32) (*ecdsa.PrivateKey, error) {
	mnemonic = strings.Join(strings.Fields(mnemonic), " ")
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, ErrInvalidMnemonic
	}

	parent, err := gethaccounts.ParseDerivationPath(path)
	if err != nil {
		return nil, fmt.Errorf("invalid derivation path %q: %w", path, err)
	}
	full := append(slices.Clone(parent), index)

	// Network params only set the serialization version bytes
	key, err := hdkeychain.NewMaster(bip39.NewSeed(mnemonic, ""), &chaincfg.MainNetParams)
	if err != nil {
		return nil, fmt.Errorf("failed to create master key: %w", err)
	}
	for _, i := range full {
		key, err = key.Derive(i)
		if err != nil {
			return nil, fmt.Errorf("failed to derive %s/%d: %w", path, index, err)
		}
	}

	priv, err := key.ECPrivKey()
	if err != nil {
		return nil, fmt.Errorf("failed to derive %s/%d: %w", path, index, err)
	}
	return priv.ToECDSA(), nil
}
