package mirror

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hashgrove/v1/core/transport"
)

// 端点数据数组键表
// 每类查询的数据数组在响应中的顶层键是固定的，用显式映射取代
// "第一个数组键"的鸭子类型探测，杜绝多数组响应的歧义
const (
	keyNfts         = "nfts"
	keyTokens       = "tokens"
	keyMessages     = "messages"
	keyTransactions = "transactions"
)

// Client 镜像节点查询客户端
// 每类 REST 查询对应一个类型化方法；标识符按原样拼接进路径，
// 本层不做格式校验，也不做特殊字符转义（调用方预编码）
type Client struct {
	baseURL   string
	transport transport.Transport
}

// NewClient 创建镜像节点查询客户端
// baseURL 的尾部斜杠在构造时一次性剥除，之后所有路径原样追加
func NewClient(baseURL string, t transport.Transport) *Client {
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		transport: t,
	}
}

// BaseURL 返回归一化后的基础地址
func (c *Client) BaseURL() string {
	return c.baseURL
}

// fetch 执行一次 GET 并把 2xx 响应体解析为原始对象
//
// 失败形态只有两种：传输失败（GET 未完成）和协议失败（非 2xx，
// 或 2xx 但响应体不是 JSON 对象）。本层不重试
func (c *Client) fetch(ctx context.Context, path string) (RawObject, error) {
	status, body, err := c.transport.Get(ctx, c.baseURL+path)
	if err != nil {
		return nil, transportError(path, err)
	}

	if status < 200 || status >= 300 {
		return nil, protocolError(path, status)
	}

	// 保留数值精度：tinybar 金额会超出 float64 的安全整数范围
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()

	var raw RawObject
	if err := decoder.Decode(&raw); err != nil {
		return nil, &QueryError{Code: CodeBadResponse, Path: path, Status: status, Err: err}
	}

	return raw, nil
}

// requireShape 校验单实体响应携带最低限度的标识字段
// 这是唯一的形态校验：除此之外的畸形输入全部宽容接受
func requireShape(raw RawObject, path, key string) error {
	if _, ok := raw[key]; !ok {
		return &QueryError{Code: CodeBadResponse, Path: path}
	}
	return nil
}

// ===== 账户查询 =====

// Account 查询账户信息
func (c *Client) Account(ctx context.Context, accountID string) (*AccountInfo, error) {
	path := "/api/v1/accounts/" + accountID
	raw, err := c.fetch(ctx, path)
	if err != nil {
		return nil, err
	}
	if err := requireShape(raw, path, "account"); err != nil {
		return nil, err
	}

	info := ConvertAccount(raw)
	return &info, nil
}

// AccountBalance 查询账户余额快照
func (c *Client) AccountBalance(ctx context.Context, accountID string) (*AccountBalance, error) {
	info, err := c.Account(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return &info.Balance, nil
}

// AccountNfts 查询账户持有的全部 NFT
func (c *Client) AccountNfts(ctx context.Context, accountID string) (Page[Nft], error) {
	return c.nftPage(ctx, fmt.Sprintf("/api/v1/accounts/%s/nfts", accountID))
}

// AccountNftsByToken 查询账户在指定代币集合下持有的 NFT
func (c *Client) AccountNftsByToken(ctx context.Context, accountID, tokenID string) (Page[Nft], error) {
	return c.nftPage(ctx, fmt.Sprintf("/api/v1/accounts/%s/nfts?token.id=%s", accountID, tokenID))
}

// AccountTokens 查询账户关联的代币列表
func (c *Client) AccountTokens(ctx context.Context, accountID string) (Page[TokenListItem], error) {
	raw, err := c.fetch(ctx, "/api/v1/tokens?account.id="+accountID)
	if err != nil {
		return Page[TokenListItem]{}, err
	}
	return ConvertPage(raw, keyTokens, ConvertTokenListItem), nil
}

// ===== 代币与 NFT 查询 =====

// Token 查询代币信息
func (c *Client) Token(ctx context.Context, tokenID string) (*TokenInfo, error) {
	path := "/api/v1/tokens/" + tokenID
	raw, err := c.fetch(ctx, path)
	if err != nil {
		return nil, err
	}
	if err := requireShape(raw, path, "token_id"); err != nil {
		return nil, err
	}

	info := ConvertToken(raw)
	return &info, nil
}

// TokenNfts 查询代币集合下的全部 NFT
func (c *Client) TokenNfts(ctx context.Context, tokenID string) (Page[Nft], error) {
	return c.nftPage(ctx, fmt.Sprintf("/api/v1/tokens/%s/nfts", tokenID))
}

// Nft 按序列号查询单个 NFT
func (c *Client) Nft(ctx context.Context, tokenID string, serial int64) (*Nft, error) {
	path := fmt.Sprintf("/api/v1/tokens/%s/nfts/%d", tokenID, serial)
	raw, err := c.fetch(ctx, path)
	if err != nil {
		return nil, err
	}
	if err := requireShape(raw, path, "serial_number"); err != nil {
		return nil, err
	}

	nft := ConvertNft(raw)
	return &nft, nil
}

// nftPage 抓取并转换一页 NFT
func (c *Client) nftPage(ctx context.Context, path string) (Page[Nft], error) {
	raw, err := c.fetch(ctx, path)
	if err != nil {
		return Page[Nft]{}, err
	}
	return ConvertPage(raw, keyNfts, ConvertNft), nil
}

// ===== 主题查询 =====

// TopicMessages 查询主题消息
func (c *Client) TopicMessages(ctx context.Context, topicID string) (Page[TopicMessage], error) {
	raw, err := c.fetch(ctx, fmt.Sprintf("/api/v1/topics/%s/messages", topicID))
	if err != nil {
		return Page[TopicMessage]{}, err
	}
	return ConvertPage(raw, keyMessages, ConvertTopicMessage), nil
}

// TopicMessage 按序列号查询单条主题消息
func (c *Client) TopicMessage(ctx context.Context, topicID string, sequence int64) (*TopicMessage, error) {
	path := fmt.Sprintf("/api/v1/topics/%s/messages/%d", topicID, sequence)
	raw, err := c.fetch(ctx, path)
	if err != nil {
		return nil, err
	}
	if err := requireShape(raw, path, "sequence_number"); err != nil {
		return nil, err
	}

	msg := ConvertTopicMessage(raw)
	return &msg, nil
}

// ===== 交易查询 =====

// AccountTransactions 查询账户相关的历史交易
func (c *Client) AccountTransactions(ctx context.Context, accountID string) (Page[TransactionRecord], error) {
	return c.transactionPage(ctx, "/api/v1/transactions?account.id="+accountID)
}

// AccountTransactionsByType 按交易类型过滤账户历史交易
// txType 为镜像节点的交易类型名，如 CRYPTOTRANSFER
func (c *Client) AccountTransactionsByType(ctx context.Context, accountID, txType string) (Page[TransactionRecord], error) {
	path := fmt.Sprintf("/api/v1/transactions?account.id=%s&transactiontype=%s", accountID, txType)
	return c.transactionPage(ctx, path)
}

// Transaction 按交易ID查询单笔交易
// 2xx 响应但交易列表为空视为未找到（协议失败），绝不返回空值
func (c *Client) Transaction(ctx context.Context, transactionID string) (*TransactionRecord, error) {
	path := "/api/v1/transactions/" + transactionID
	raw, err := c.fetch(ctx, path)
	if err != nil {
		return nil, err
	}

	records := objSlice(arrField(raw, keyTransactions))
	if len(records) == 0 {
		return nil, &QueryError{Code: CodeNotFound, Path: path}
	}

	// 同一交易ID可能附带计划交易等多条记录，取首条
	record := ConvertTransaction(records[0])
	return &record, nil
}

// transactionPage 抓取并转换一页历史交易
func (c *Client) transactionPage(ctx context.Context, path string) (Page[TransactionRecord], error) {
	raw, err := c.fetch(ctx, path)
	if err != nil {
		return Page[TransactionRecord]{}, err
	}
	return ConvertPage(raw, keyTransactions, ConvertTransaction), nil
}

// ===== 网络信息查询 =====

// ExchangeRates 查询当前与下一周期的汇率
func (c *Client) ExchangeRates(ctx context.Context) (*ExchangeRateInfo, error) {
	raw, err := c.fetch(ctx, "/api/v1/network/exchangerate")
	if err != nil {
		return nil, err
	}

	info := ConvertExchangeRates(raw)
	return &info, nil
}

// NetworkSupply 查询网络供应量
func (c *Client) NetworkSupply(ctx context.Context) (*NetworkSupply, error) {
	raw, err := c.fetch(ctx, "/api/v1/network/supply")
	if err != nil {
		return nil, err
	}

	supply := ConvertNetworkSupply(raw)
	return &supply, nil
}

// NetworkStake 查询网络质押信息
func (c *Client) NetworkStake(ctx context.Context) (*NetworkStake, error) {
	raw, err := c.fetch(ctx, "/api/v1/network/stake")
	if err != nil {
		return nil, err
	}

	stake := ConvertNetworkStake(raw)
	return &stake, nil
}

// ===== 通用翻页 =====

// FetchPage 沿 links.next 抓取下一页
//
// path 通常取自上一页的 Links.Next。端点类型在这里是未知的，
// 数据数组用通用扫描定位（见 ConvertPage 的平局裁决说明）
func FetchPage[T any](ctx context.Context, c *Client, path string, conv Converter[T]) (Page[T], error) {
	raw, err := c.fetch(ctx, path)
	if err != nil {
		return Page[T]{}, err
	}
	return ConvertPage(raw, "", conv), nil
}
