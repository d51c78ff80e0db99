package hashgrove

import (
	"context"
	"time"

	"github.com/hashgrove/v1/core/config"
	"github.com/hashgrove/v1/core/mirror"
	"github.com/hashgrove/v1/core/session"
	"github.com/hashgrove/v1/core/transport"
)

// Client Hashgrove 统一客户端入口
// 封装镜像节点查询与交易会话生命周期
type Client struct {
	mirror *mirror.Client
	sc     *session.Context
}

// New 按网络名创建客户端，仅覆盖镜像查询能力
// network: "mainnet" / "testnet" / "previewnet"
func New(network string) (*Client, error) {
	n, err := config.ParseNetwork(network)
	if err != nil {
		return nil, err
	}

	return &Client{
		mirror: mirror.NewClient(n.MirrorURL(), transport.NewRESTTransport(30*time.Second)),
	}, nil
}

// NewWithMirrorURL 使用自定义镜像节点地址创建客户端
func NewWithMirrorURL(mirrorURL string) *Client {
	return &Client{
		mirror: mirror.NewClient(mirrorURL, transport.NewRESTTransport(30*time.Second)),
	}
}

// NewWithSession 初始化进程级会话上下文并创建完整客户端
// 重复调用复用已有会话（首次配置生效）
func NewWithSession(cfg *session.Config) (*Client, error) {
	sc, err := session.Initialize(cfg)
	if err != nil {
		return nil, err
	}

	return &Client{
		mirror: sc.Mirror(),
		sc:     sc,
	}, nil
}

// Mirror 获取底层镜像节点客户端
// 用于直接调用查询方法
func (c *Client) Mirror() *mirror.Client {
	return c.mirror
}

// SessionContext 获取会话上下文
// 未通过 NewWithSession 创建时返回 nil
func (c *Client) SessionContext() *session.Context {
	return c.sc
}

// === 便捷方法：账户查询 ===

// GetAccount 获取账户信息
func (c *Client) GetAccount(ctx context.Context, accountID string) (*mirror.AccountInfo, error) {
	return c.mirror.Account(ctx, accountID)
}

// GetAccountBalance 获取账户余额
func (c *Client) GetAccountBalance(ctx context.Context, accountID string) (*mirror.AccountBalance, error) {
	return c.mirror.AccountBalance(ctx, accountID)
}

// GetAccountNfts 获取账户持有的 NFT 列表
func (c *Client) GetAccountNfts(ctx context.Context, accountID string) (mirror.Page[mirror.Nft], error) {
	return c.mirror.AccountNfts(ctx, accountID)
}

// GetAccountTokens 获取账户关联的代币列表
func (c *Client) GetAccountTokens(ctx context.Context, accountID string) (mirror.Page[mirror.TokenListItem], error) {
	return c.mirror.AccountTokens(ctx, accountID)
}

// === 便捷方法：代币与 NFT ===

// GetToken 获取代币详情
func (c *Client) GetToken(ctx context.Context, tokenID string) (*mirror.TokenInfo, error) {
	return c.mirror.Token(ctx, tokenID)
}

// GetNft 获取单个 NFT
func (c *Client) GetNft(ctx context.Context, tokenID string, serial int64) (*mirror.Nft, error) {
	return c.mirror.Nft(ctx, tokenID, serial)
}

// === 便捷方法：主题消息 ===

// GetTopicMessages 获取主题消息列表
func (c *Client) GetTopicMessages(ctx context.Context, topicID string) (mirror.Page[mirror.TopicMessage], error) {
	return c.mirror.TopicMessages(ctx, topicID)
}

// GetTopicMessage 按序号获取单条主题消息
func (c *Client) GetTopicMessage(ctx context.Context, topicID string, sequence int64) (*mirror.TopicMessage, error) {
	return c.mirror.TopicMessage(ctx, topicID, sequence)
}

// === 便捷方法：交易查询 ===

// GetTransaction 获取交易记录
func (c *Client) GetTransaction(ctx context.Context, transactionID string) (*mirror.TransactionRecord, error) {
	return c.mirror.Transaction(ctx, transactionID)
}

// GetAccountTransactions 获取账户相关交易列表
func (c *Client) GetAccountTransactions(ctx context.Context, accountID string) (mirror.Page[mirror.TransactionRecord], error) {
	return c.mirror.AccountTransactions(ctx, accountID)
}

// === 便捷方法：网络信息 ===

// GetExchangeRates 获取当前与下期汇率
func (c *Client) GetExchangeRates(ctx context.Context) (*mirror.ExchangeRateInfo, error) {
	return c.mirror.ExchangeRates(ctx)
}

// GetNetworkSupply 获取网络供应量信息
func (c *Client) GetNetworkSupply(ctx context.Context) (*mirror.NetworkSupply, error) {
	return c.mirror.NetworkSupply(ctx)
}

// === 便捷方法：交易执行 ===

// Execute 通过会话上下文执行一次账本调用
// 自动触发前后监听器并发布交易事件
func (c *Client) Execute(ctx context.Context, serviceName, methodName string, call session.LedgerCall) (string, error) {
	if c.sc == nil {
		return "", session.ErrNotInitialized
	}
	return c.sc.Execute(ctx, serviceName, methodName, call)
}
