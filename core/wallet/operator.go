// Package wallet provides operator key handling for the SDK.
package wallet

import (
	"crypto/ed25519"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	btcecdsa "github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"golang.org/x/crypto/sha3"
)

// KeyType 操作员密钥类型
type KeyType int

const (
	// KeyTypeEd25519 Ed25519 密钥
	KeyTypeEd25519 KeyType = iota
	// KeyTypeECDSA secp256k1 ECDSA 密钥
	KeyTypeECDSA
)

// String 返回密钥类型名
func (t KeyType) String() string {
	switch t {
	case KeyTypeEd25519:
		return "ED25519"
	case KeyTypeECDSA:
		return "ECDSA_SECP256K1"
	default:
		return "UNKNOWN"
	}
}

// DER 前缀 - 账本生态的标准私钥编码
// 私钥以 hex 字符串流转时可能携带这些算法标识前缀
const (
	derPrefixEd25519 = "302e020100300506032b657004220420"
	derPrefixECDSA   = "3030020100300706052b8104000a04220420"
)

// ErrInvalidKey 无法解析的操作员私钥
var ErrInvalidKey = errors.New("invalid operator key")

// OperatorKey 操作员私钥 - Ed25519 或 secp256k1 ECDSA
type OperatorKey struct {
	keyType KeyType
	ed      ed25519.PrivateKey
	ec      *btcec.PrivateKey
}

// ParseKey 解析 hex 编码的操作员私钥
//
// 支持的形态：
//   - DER hex（带算法标识前缀，自动识别 Ed25519/ECDSA）
//   - 裸 32 字节 hex（默认按 Ed25519 种子解释）
//   - 0x 前缀的 32 字节 hex（按 ECDSA 解释，EVM 生态惯例）
//   - 64 字节 hex（Ed25519 种子+公钥形态）
func ParseKey(s string) (*OperatorKey, error) {
	s = strings.TrimSpace(s)

	lower := strings.ToLower(s)
	switch {
	case strings.HasPrefix(lower, derPrefixEd25519):
		return parseEd25519Hex(lower[len(derPrefixEd25519):])
	case strings.HasPrefix(lower, derPrefixECDSA):
		return parseECDSAHex(lower[len(derPrefixECDSA):])
	case strings.HasPrefix(lower, "0x"):
		return parseECDSAHex(lower[2:])
	default:
		return parseEd25519Hex(lower)
	}
}

// parseEd25519Hex 解析裸 Ed25519 hex 私钥
func parseEd25519Hex(s string) (*OperatorKey, error) {
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: decode hex: %v", ErrInvalidKey, err)
	}

	switch len(data) {
	case ed25519.SeedSize:
		return &OperatorKey{keyType: KeyTypeEd25519, ed: ed25519.NewKeyFromSeed(data)}, nil
	case ed25519.PrivateKeySize:
		// 种子+公钥形态，重新从种子派生以校验一致性
		return &OperatorKey{keyType: KeyTypeEd25519, ed: ed25519.NewKeyFromSeed(data[:ed25519.SeedSize])}, nil
	default:
		return nil, fmt.Errorf("%w: ed25519 key must be %d or %d bytes, got %d",
			ErrInvalidKey, ed25519.SeedSize, ed25519.PrivateKeySize, len(data))
	}
}

// parseECDSAHex 解析裸 secp256k1 hex 私钥
func parseECDSAHex(s string) (*OperatorKey, error) {
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: decode hex: %v", ErrInvalidKey, err)
	}
	if len(data) != 32 {
		return nil, fmt.Errorf("%w: secp256k1 key must be 32 bytes, got %d", ErrInvalidKey, len(data))
	}

	priv, _ := btcec.PrivKeyFromBytes(data)
	return &OperatorKey{keyType: KeyTypeECDSA, ec: priv}, nil
}

// Type 返回密钥类型
func (k *OperatorKey) Type() KeyType {
	return k.keyType
}

// PublicKeyHex 返回 hex 编码的公钥
// Ed25519 为 32 字节原始公钥，ECDSA 为 33 字节压缩公钥
func (k *OperatorKey) PublicKeyHex() string {
	switch k.keyType {
	case KeyTypeEd25519:
		return hex.EncodeToString(k.ed.Public().(ed25519.PublicKey))
	case KeyTypeECDSA:
		return hex.EncodeToString(k.ec.PubKey().SerializeCompressed())
	default:
		return ""
	}
}

// Sign 对消息签名
// Ed25519 直接签名消息体；ECDSA 签名 Keccak-256 摘要并输出 DER 编码
func (k *OperatorKey) Sign(message []byte) ([]byte, error) {
	switch k.keyType {
	case KeyTypeEd25519:
		return ed25519.Sign(k.ed, message), nil
	case KeyTypeECDSA:
		digest := keccak256(message)
		sig := btcecdsa.Sign(k.ec, digest)
		return sig.Serialize(), nil
	default:
		return nil, fmt.Errorf("%w: unknown key type", ErrInvalidKey)
	}
}

// EVMAddress 派生 EVM 别名地址（仅 ECDSA 密钥支持）
// 取未压缩公钥去掉前缀字节后的 Keccak-256 摘要末 20 字节
func (k *OperatorKey) EVMAddress() (string, error) {
	if k.keyType != KeyTypeECDSA {
		return "", fmt.Errorf("evm address requires an ECDSA key, have %s", k.keyType)
	}

	pub := k.ec.PubKey().SerializeUncompressed()
	digest := keccak256(pub[1:])
	return "0x" + hex.EncodeToString(digest[12:]), nil
}

// keccak256 计算 Keccak-256 摘要
func keccak256(data []byte) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(data) //nolint:errcheck
	return h.Sum(nil)
}
