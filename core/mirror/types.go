package mirror

// 镜像节点查询结果的类型定义
// 所有字段与镜像节点 REST API 的 snake_case 响应一一对应；
// 上游缺失的可选字段保持 Go 零值或 nil，转换层不做任何默认值填充

// AccountInfo 账户信息
type AccountInfo struct {
	AccountID       string         // 账户ID，如 0.0.12345
	Alias           string         // 账户别名（可选）
	EVMAddress      string         // EVM 地址（可选）
	Balance         AccountBalance // 账户余额快照
	Deleted         bool           // 是否已删除
	Memo            string         // 账户备注
	Key             *PublicKey     // 账户公钥（可选）
	AutoRenewPeriod int64          // 自动续期周期（秒）
	EthereumNonce   int64          // 以太坊兼容 nonce
	MaxAutoTokenAssociations int64 // 最大自动代币关联数
	CreatedTimestamp string        // 创建时间戳（共识时间）
	StakedAccountID  string        // 质押目标账户（可选）
	StakedNodeID     *int64        // 质押目标节点（可选）
	PendingReward    int64         // 待领取质押奖励
}

// PublicKey 账户或实体的公钥
type PublicKey struct {
	Type string // 密钥类型: ED25519 / ECDSA_SECP256K1 / ProtobufEncoded
	Key  string // 十六进制编码的密钥内容
}

// AccountBalance 账户余额快照
type AccountBalance struct {
	Balance   int64          // tinybar 余额
	Timestamp string         // 快照时间戳
	Tokens    []TokenBalance // 持有的代币余额
}

// TokenBalance 单个代币的余额
type TokenBalance struct {
	TokenID string // 代币ID
	Balance int64  // 余额（最小单位）
}

// Nft 单个 NFT 实例
type Nft struct {
	TokenID           string // 所属代币ID
	AccountID         string // 当前持有账户
	SerialNumber      int64  // 序列号
	Metadata          string // base64 编码的元数据
	Deleted           bool   // 是否已销毁
	CreatedTimestamp  string // 铸造时间戳
	ModifiedTimestamp string // 最近变更时间戳
	Spender           string // 授权支配账户（可选）
	DelegatingSpender string // 委托支配账户（可选）
}

// TokenInfo 代币完整信息
type TokenInfo struct {
	TokenID           string      // 代币ID
	Name              string      // 代币名称
	Symbol            string      // 代币符号
	Decimals          int64       // 小数位数
	TotalSupply       int64       // 当前总供应量（最小单位）
	MaxSupply         int64       // 最大供应量，0 表示无上限
	Type              string      // FUNGIBLE_COMMON / NON_FUNGIBLE_UNIQUE
	SupplyType        string      // FINITE / INFINITE
	TreasuryAccountID string      // 金库账户
	Memo              string      // 代币备注
	Deleted           bool        // 是否已删除
	Paused            bool        // 是否已暂停
	CreatedTimestamp  string      // 创建时间戳
	ModifiedTimestamp string      // 最近变更时间戳
	AdminKey          *PublicKey  // 管理密钥（可选）
	SupplyKey         *PublicKey  // 供应密钥（可选）
	CustomFees        []CustomFee // 自定义费用（固定→比例→版税的扁平序列）
}

// TokenListItem 代币列表项（/tokens 列表端点的精简形态）
type TokenListItem struct {
	TokenID  string // 代币ID
	Name     string // 代币名称
	Symbol   string // 代币符号
	Type     string // 代币类型
	Decimals int64  // 小数位数
}

// CustomFeeType 自定义费用类型判别值
type CustomFeeType string

const (
	// CustomFeeFixed 固定费用
	CustomFeeFixed CustomFeeType = "FIXED_FEE"
	// CustomFeeFractional 比例费用
	CustomFeeFractional CustomFeeType = "FRACTIONAL_FEE"
	// CustomFeeRoyalty 版税费用
	CustomFeeRoyalty CustomFeeType = "ROYALTY_FEE"
)

// CustomFee 自定义费用条目 - 三种形态的封闭标签联合
// Type 字段决定哪些分支字段有效；扁平化顺序（固定→比例→版税，
// 各来源数组内保持相对顺序）是展示层依赖的契约
type CustomFee struct {
	Type                CustomFeeType // 费用类型判别值
	CollectorAccountID  string        // 费用接收账户
	AllCollectorsExempt bool          // 费用接收方是否互相豁免

	// === 固定费用分支 ===
	Amount              int64  // 固定金额（最小单位）
	DenominatingTokenID string // 计价代币ID，空串表示 hbar

	// === 比例费用分支 ===
	Numerator      int64 // 分子
	Denominator    int64 // 分母
	Minimum        int64 // 最低收费
	Maximum        int64 // 最高收费，0 表示无上限
	NetOfTransfers bool  // 是否按净额计算

	// === 版税费用分支 ===
	FallbackFee *FixedFallbackFee // 回退固定费用（可选）
}

// FixedFallbackFee 版税费用的回退固定费用
type FixedFallbackFee struct {
	Amount              int64  // 固定金额
	DenominatingTokenID string // 计价代币ID，空串表示 hbar
}

// TopicMessage 主题消息
type TopicMessage struct {
	TopicID            string     // 主题ID
	SequenceNumber     int64      // 序列号
	ConsensusTimestamp string     // 共识时间戳
	Message            string     // base64 编码的消息内容
	PayerAccountID     string     // 付费账户
	RunningHash        string     // 运行哈希
	RunningHashVersion int64      // 运行哈希版本
	ChunkInfo          *ChunkInfo // 分片信息（可选，仅分片消息携带）
}

// ChunkInfo 分片消息的分片信息
type ChunkInfo struct {
	InitialTransactionID string // 首个分片的交易ID
	Number               int64  // 当前分片序号（从1开始）
	Total                int64  // 分片总数
}

// TransactionRecord 历史交易记录
type TransactionRecord struct {
	TransactionID       string          // 交易ID，如 0.0.1@1700000000.000000000
	TransactionHash     string          // 交易哈希（base64）
	Name                string          // 交易类型名，如 CRYPTOTRANSFER
	Result              string          // 共识结果，如 SUCCESS
	ConsensusTimestamp  string          // 共识时间戳
	ValidStartTimestamp string          // 有效起始时间戳
	ChargedTxFee        int64           // 实际收取的手续费（tinybar）
	MaxFee              string          // 最大手续费
	MemoBase64          string          // base64 编码的备注
	Node                string          // 处理节点账户
	EntityID            string          // 关联实体ID（可选）
	Scheduled           bool            // 是否为计划交易
	Transfers           []Transfer      // hbar 转账明细
	TokenTransfers      []TokenTransfer // 代币转账明细
	NftTransfers        []NftTransfer   // NFT 转账明细
}

// Transfer hbar 转账明细条目
type Transfer struct {
	Account    string // 账户ID
	Amount     int64  // 金额（tinybar，负数为转出）
	IsApproval bool   // 是否为授权转账
}

// TokenTransfer 代币转账明细条目
type TokenTransfer struct {
	TokenID    string // 代币ID
	Account    string // 账户ID
	Amount     int64  // 金额（最小单位，负数为转出）
	IsApproval bool   // 是否为授权转账
}

// NftTransfer NFT 转账明细条目
type NftTransfer struct {
	TokenID          string // 代币ID
	SenderAccountID  string // 发送账户（铸造时为空）
	ReceiverAccountID string // 接收账户
	SerialNumber     int64  // 序列号
	IsApproval       bool   // 是否为授权转账
}

// ExchangeRateInfo 汇率信息（当前与下一周期）
type ExchangeRateInfo struct {
	CurrentRate ExchangeRate // 当前汇率
	NextRate    ExchangeRate // 下一周期汇率
	Timestamp   string       // 查询时间戳
}

// ExchangeRate 单个周期的 hbar/美分汇率
type ExchangeRate struct {
	CentEquivalent int64 // 美分等值
	HbarEquivalent int64 // hbar 等值
	ExpirationTime int64 // 过期时间（unix 秒）
}

// NetworkSupply 网络供应量
type NetworkSupply struct {
	ReleasedSupply string // 已释放供应量（tinybar，十进制字符串）
	TotalSupply    string // 总供应量（tinybar，十进制字符串）
	Timestamp      string // 快照时间戳
}

// NetworkStake 网络质押信息
type NetworkStake struct {
	MaxStakeRewarded          int64   // 可获奖励的最大质押量
	MaxStakingRewardRatePerHbar int64 // 每 hbar 最大奖励率
	NodeRewardFeeFraction     float64 // 节点奖励费用比例
	StakeTotal                int64   // 全网质押总量
	StakingPeriod             string  // 当前质押周期
	StakingRewardFeeFraction  float64 // 质押奖励费用比例
	StakingRewardRate         int64   // 质押奖励率
	StakingRewardsReserved    int64   // 已预留的质押奖励
}
