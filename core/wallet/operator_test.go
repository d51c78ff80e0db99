package wallet

import (
	"crypto/ed25519"
	"encoding/hex"
	"strings"
	"testing"

	btcecdsa "github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	seedHex = strings.Repeat("ab", 32)
	ecHex   = strings.Repeat("cd", 32)
)

// TestParseKey 测试私钥形态识别
func TestParseKey(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantType KeyType
		wantErr  bool
	}{
		{"裸32字节hex按Ed25519", seedHex, KeyTypeEd25519, false},
		{"64字节hex按Ed25519种子加公钥", seedHex + seedHex, KeyTypeEd25519, false},
		{"Ed25519 DER前缀", derPrefixEd25519 + seedHex, KeyTypeEd25519, false},
		{"ECDSA DER前缀", derPrefixECDSA + ecHex, KeyTypeECDSA, false},
		{"0x前缀按ECDSA", "0x" + ecHex, KeyTypeECDSA, false},
		{"大写hex可解析", strings.ToUpper(seedHex), KeyTypeEd25519, false},
		{"首尾空白被剥除", "  " + seedHex + "  ", KeyTypeEd25519, false},
		{"非hex内容", "not-a-key", 0, true},
		{"长度不符", "aabbcc", 0, true},
		{"0x后长度不符", "0xaabb", 0, true},
		{"空串", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := ParseKey(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidKey)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, key.Type())
			assert.NotEmpty(t, key.PublicKeyHex())
		})
	}
}

// TestParseKeyDERConsistency DER 形态与裸 hex 派生同一把密钥
func TestParseKeyDERConsistency(t *testing.T) {
	bare, err := ParseKey(seedHex)
	require.NoError(t, err)

	der, err := ParseKey(derPrefixEd25519 + seedHex)
	require.NoError(t, err)

	assert.Equal(t, bare.PublicKeyHex(), der.PublicKeyHex())
}

// TestSignEd25519 测试 Ed25519 签名可验证
func TestSignEd25519(t *testing.T) {
	key, err := ParseKey(seedHex)
	require.NoError(t, err)

	message := []byte("submit this transaction")
	sig, err := key.Sign(message)
	require.NoError(t, err)
	assert.Len(t, sig, ed25519.SignatureSize)

	pub, err := hex.DecodeString(key.PublicKeyHex())
	require.NoError(t, err)
	assert.True(t, ed25519.Verify(ed25519.PublicKey(pub), message, sig))
}

// TestSignECDSA 测试 ECDSA 签名的 DER 编码可验证
func TestSignECDSA(t *testing.T) {
	key, err := ParseKey("0x" + ecHex)
	require.NoError(t, err)

	message := []byte("submit this transaction")
	sig, err := key.Sign(message)
	require.NoError(t, err)

	parsed, err := btcecdsa.ParseDERSignature(sig)
	require.NoError(t, err)
	assert.True(t, parsed.Verify(keccak256(message), key.ec.PubKey()))
}

// TestEVMAddress 测试 EVM 别名地址派生
func TestEVMAddress(t *testing.T) {
	t.Run("ECDSA密钥派生40位hex地址", func(t *testing.T) {
		key, err := ParseKey("0x" + ecHex)
		require.NoError(t, err)

		addr, err := key.EVMAddress()
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(addr, "0x"))
		assert.Len(t, addr, 42)
	})

	t.Run("Ed25519密钥无EVM地址", func(t *testing.T) {
		key, err := ParseKey(seedHex)
		require.NoError(t, err)

		_, err = key.EVMAddress()
		assert.Error(t, err)
	})
}

// TestKeyTypeString 测试密钥类型名
func TestKeyTypeString(t *testing.T) {
	assert.Equal(t, "ED25519", KeyTypeEd25519.String())
	assert.Equal(t, "ECDSA_SECP256K1", KeyTypeECDSA.String())
	assert.Equal(t, "UNKNOWN", KeyType(99).String())
}

// TestKeyFromMnemonic 测试助记词派生
func TestKeyFromMnemonic(t *testing.T) {
	const mnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

	t.Run("派生确定性", func(t *testing.T) {
		first, err := KeyFromMnemonic(mnemonic, "")
		require.NoError(t, err)
		assert.Equal(t, KeyTypeEd25519, first.Type())

		second, err := KeyFromMnemonic(mnemonic, "")
		require.NoError(t, err)
		assert.Equal(t, first.PublicKeyHex(), second.PublicKeyHex())
	})

	t.Run("口令改变派生结果", func(t *testing.T) {
		plain, err := KeyFromMnemonic(mnemonic, "")
		require.NoError(t, err)

		withPass, err := KeyFromMnemonic(mnemonic, "hunter2")
		require.NoError(t, err)

		assert.NotEqual(t, plain.PublicKeyHex(), withPass.PublicKeyHex())
	})

	t.Run("无效助记词被拒绝", func(t *testing.T) {
		_, err := KeyFromMnemonic("definitely not a valid mnemonic phrase at all", "")
		assert.ErrorIs(t, err, ErrInvalidKey)
	})
}
