package config

import "time"

// 客户端默认配置值
const (
	// defaultTimeout 请求超时时间设为 30 秒
	// 镜像节点的分页查询在高负载时段可能接近这个量级
	defaultTimeout = 30 * time.Second
)

// 环境变量名
// 显式配置缺失时按这些变量解析（显式参数优先于环境）
const (
	// EnvNetwork 网络名: mainnet / testnet / previewnet
	EnvNetwork = "HASHGROVE_NETWORK"
	// EnvOperatorID 操作员账户ID
	EnvOperatorID = "HASHGROVE_OPERATOR_ID"
	// EnvOperatorKey 操作员私钥（hex 或 DER hex）
	EnvOperatorKey = "HASHGROVE_OPERATOR_KEY"
	// EnvMirrorURL 镜像节点地址覆盖（可选）
	EnvMirrorURL = "HASHGROVE_MIRROR_URL"
)

// defaultMirrorURLs 各网络的默认镜像节点地址
var defaultMirrorURLs = map[Network]string{
	NetworkMainnet:    "https://mainnet.mirror.hashgrove.io",
	NetworkTestnet:    "https://testnet.mirror.hashgrove.io",
	NetworkPreviewnet: "https://previewnet.mirror.hashgrove.io",
}
