// Package config provides client configuration resolution for the SDK.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

// Network 账本网络标识 - 封闭枚举
type Network string

const (
	// NetworkMainnet 主网
	NetworkMainnet Network = "mainnet"
	// NetworkTestnet 测试网
	NetworkTestnet Network = "testnet"
	// NetworkPreviewnet 预览网
	NetworkPreviewnet Network = "previewnet"
)

// ErrUnsupportedNetwork 不支持的网络名
// 封闭枚举之外的值一律报错，绝不静默回退到默认网络
var ErrUnsupportedNetwork = errors.New("unsupported network")

// ErrMissingConfig 配置缺失：网络名、操作员账户或操作员私钥未提供
var ErrMissingConfig = errors.New("missing required configuration")

// ParseNetwork 解析网络名（大小写不敏感）
func ParseNetwork(name string) (Network, error) {
	switch Network(strings.ToLower(strings.TrimSpace(name))) {
	case NetworkMainnet:
		return NetworkMainnet, nil
	case NetworkTestnet:
		return NetworkTestnet, nil
	case NetworkPreviewnet:
		return NetworkPreviewnet, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedNetwork, name)
	}
}

// MirrorURL 返回网络的默认镜像节点地址
func (n Network) MirrorURL() string {
	return defaultMirrorURLs[n]
}

// Options 客户端配置选项
type Options struct {
	Network     Network       // 账本网络
	OperatorID  string        // 操作员账户ID，如 0.0.12345
	OperatorKey string        // 操作员私钥（hex 或 DER hex，或 BIP-39 助记词）
	MirrorURL   string        // 镜像节点地址，空串使用网络默认值
	Timeout     time.Duration // 请求超时
}

// UserOptions 用户侧输入 - 未解析的原始配置
// Network 为字符串形态，在 Resolve 时才做封闭枚举校验
type UserOptions struct {
	Network     string // 网络名
	OperatorID  string // 操作员账户ID
	OperatorKey string // 操作员私钥
	MirrorURL   string // 镜像节点地址覆盖（可选）
}

// Resolve 解析配置：显式参数优先，环境变量兜底
//
// 网络名、操作员账户、操作员私钥三者都无法从任一来源取得时
// 返回 ErrMissingConfig；网络名不在封闭枚举内时返回
// ErrUnsupportedNetwork
func Resolve(user *UserOptions) (*Options, error) {
	merged := UserOptions{}
	if user != nil {
		merged = *user
	}

	if merged.Network == "" {
		merged.Network = os.Getenv(EnvNetwork)
	}
	if merged.OperatorID == "" {
		merged.OperatorID = os.Getenv(EnvOperatorID)
	}
	if merged.OperatorKey == "" {
		merged.OperatorKey = os.Getenv(EnvOperatorKey)
	}
	if merged.MirrorURL == "" {
		merged.MirrorURL = os.Getenv(EnvMirrorURL)
	}

	if merged.Network == "" || merged.OperatorID == "" || merged.OperatorKey == "" {
		var missing []string
		if merged.Network == "" {
			missing = append(missing, "network")
		}
		if merged.OperatorID == "" {
			missing = append(missing, "operator id")
		}
		if merged.OperatorKey == "" {
			missing = append(missing, "operator key")
		}
		return nil, fmt.Errorf("%w: %s", ErrMissingConfig, strings.Join(missing, ", "))
	}

	network, err := ParseNetwork(merged.Network)
	if err != nil {
		return nil, err
	}

	mirrorURL := merged.MirrorURL
	if mirrorURL == "" {
		mirrorURL = network.MirrorURL()
	}

	return &Options{
		Network:     network,
		OperatorID:  merged.OperatorID,
		OperatorKey: merged.OperatorKey,
		MirrorURL:   mirrorURL,
		Timeout:     defaultTimeout,
	}, nil
}
