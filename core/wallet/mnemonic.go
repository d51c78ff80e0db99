package wallet

import (
	"crypto/ed25519"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/binary"
	"fmt"

	"github.com/tyler-smith/go-bip39"
)

// 账本生态的标准派生路径: m/44'/3030'/0'/0'/0'
// SLIP-10 Ed25519 派生只支持硬化子密钥，路径各段全部硬化
var defaultDerivationPath = []uint32{44, 3030, 0, 0, 0}

// KeyFromMnemonic 从 BIP-39 助记词派生 Ed25519 操作员私钥
// 派生遵循 SLIP-10，路径固定为 m/44'/3030'/0'/0'/0'
func KeyFromMnemonic(mnemonic, passphrase string) (*OperatorKey, error) {
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, fmt.Errorf("%w: invalid mnemonic", ErrInvalidKey)
	}

	seed := bip39.NewSeed(mnemonic, passphrase)

	key, chainCode := slip10MasterKey(seed)
	for _, index := range defaultDerivationPath {
		key, chainCode = slip10DeriveHardened(key, chainCode, index)
	}

	return &OperatorKey{keyType: KeyTypeEd25519, ed: ed25519.NewKeyFromSeed(key)}, nil
}

// slip10MasterKey 从种子派生 SLIP-10 Ed25519 主密钥
func slip10MasterKey(seed []byte) (key, chainCode []byte) {
	mac := hmac.New(sha512.New, []byte("ed25519 seed"))
	mac.Write(seed) //nolint:errcheck
	sum := mac.Sum(nil)
	return sum[:32], sum[32:]
}

// slip10DeriveHardened 派生一级硬化子密钥
func slip10DeriveHardened(key, chainCode []byte, index uint32) (childKey, childChain []byte) {
	const hardenedOffset = 0x80000000

	data := make([]byte, 0, 37)
	data = append(data, 0x00)
	data = append(data, key...)
	data = binary.BigEndian.AppendUint32(data, hardenedOffset+index)

	mac := hmac.New(sha512.New, chainCode)
	mac.Write(data) //nolint:errcheck
	sum := mac.Sum(nil)
	return sum[:32], sum[32:]
}
