package session

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashgrove/v1/core/config"
	"github.com/hashgrove/v1/core/mirror"
	"github.com/hashgrove/v1/core/transport"
	"github.com/hashgrove/v1/core/wallet"
	infralog "github.com/hashgrove/v1/internal/core/infrastructure/log"
	"github.com/hashgrove/v1/pkg/interfaces/ledger"
	logInterface "github.com/hashgrove/v1/pkg/interfaces/log"
)

// 进程级单例
// 会话句柄和监听器注册表被所有并发调用方共享，
// 单写锁保护 Initialize/Reset/Add/Remove，派发前在锁内做快照
var (
	globalMu sync.Mutex
	global   *Context
)

// Submitter 原始交易提交通道
// 默认会话自身不与共识节点通信，提交能力由外部注入
type Submitter func(ctx context.Context, tx []byte) (string, error)

// Config 会话上下文配置
// 只在首次成功的 Initialize 上生效，之后的调用全部忽略
type Config struct {
	Network     string               // 网络名: mainnet / testnet / previewnet
	OperatorID  string               // 操作员账户ID
	OperatorKey string               // 操作员私钥（hex/DER hex/BIP-39 助记词）
	MirrorURL   string               // 镜像节点地址覆盖（可选）
	Logger      logInterface.Logger  // 日志记录器（可选，默认用全局记录器）
	Submitter   Submitter            // 交易提交通道（可选）

	// SessionFactory 自定义会话句柄工厂（可选）
	// 设置后由工厂负责构建会话，Submitter 被忽略
	SessionFactory func(opts *config.Options, key *wallet.OperatorKey) (ledger.Session, error)
}

// Context 会话上下文 - 进程级单例
// 独占账本会话句柄和按注册顺序排列的监听器列表
type Context struct {
	id      string
	network config.Network
	session ledger.Session
	mirror  *mirror.Client
	logger  logInterface.Logger

	mu        sync.Mutex
	listeners []TransactionListener
}

// Initialize 初始化会话上下文
//
// 已存在实例时原样返回（幂等，本次 cfg 被忽略）。否则按
// 显式配置→环境变量的顺序解析；网络名、操作员账户、操作员私钥
// 任一缺失返回配置错误，网络名不在封闭枚举内返回
// 不支持网络错误，绝不静默回退
func Initialize(cfg *Config) (*Context, error) {
	globalMu.Lock()
	defer globalMu.Unlock()

	if global != nil {
		return global, nil
	}

	var user *config.UserOptions
	if cfg != nil {
		user = &config.UserOptions{
			Network:     cfg.Network,
			OperatorID:  cfg.OperatorID,
			OperatorKey: cfg.OperatorKey,
			MirrorURL:   cfg.MirrorURL,
		}
	}

	opts, err := config.Resolve(user)
	if err != nil {
		return nil, err
	}

	key, err := parseOperatorKey(opts.OperatorKey)
	if err != nil {
		return nil, err
	}

	logger := infralog.GetLogger()
	var factory func(*config.Options, *wallet.OperatorKey) (ledger.Session, error)
	var submitter Submitter
	if cfg != nil {
		if cfg.Logger != nil {
			logger = cfg.Logger
		}
		factory = cfg.SessionFactory
		submitter = cfg.Submitter
	}

	var session ledger.Session
	if factory != nil {
		session, err = factory(opts, key)
		if err != nil {
			return nil, err
		}
	} else {
		session = newSigningSession(opts.OperatorID, key, submitter)
	}

	instance := &Context{
		id:      uuid.NewString(),
		network: opts.Network,
		session: session,
		mirror:  mirror.NewClient(opts.MirrorURL, transport.NewRESTTransport(opts.Timeout)),
		logger:  logger,
	}

	instance.logger.Infof("session context initialized: id=%s network=%s operator=%s",
		instance.id, instance.network, opts.OperatorID)

	global = instance
	return instance, nil
}

// parseOperatorKey 解析操作员凭证
// 含空格的凭证按 BIP-39 助记词处理，否则按 hex 私钥处理
func parseOperatorKey(credential string) (*wallet.OperatorKey, error) {
	if strings.Contains(strings.TrimSpace(credential), " ") {
		return wallet.KeyFromMnemonic(credential, "")
	}
	return wallet.ParseKey(credential)
}

// Get 获取现有的会话上下文
// 不存在时返回 ErrNotInitialized，永远不会隐式初始化
func Get() (*Context, error) {
	globalMu.Lock()
	defer globalMu.Unlock()

	if global == nil {
		return nil, ErrNotInitialized
	}
	return global, nil
}

// Reset 销毁会话上下文并释放会话句柄
// 没有实例时为空操作，可重复调用
func Reset() {
	globalMu.Lock()
	defer globalMu.Unlock()

	if global == nil {
		return
	}

	// 尽力关闭，失败只记日志
	if err := global.session.Close(); err != nil {
		global.logger.Warnf("close ledger session: %v", err)
	}

	global = nil
}

// ID 返回会话上下文ID
func (c *Context) ID() string {
	return c.id
}

// Network 返回绑定的网络
func (c *Context) Network() config.Network {
	return c.network
}

// Session 返回账本会话句柄
func (c *Context) Session() ledger.Session {
	return c.session
}

// Mirror 返回镜像节点查询客户端
func (c *Context) Mirror() *mirror.Client {
	return c.mirror
}

// AddTransactionListener 追加注册一个监听器
// 注册顺序就是派发顺序
func (c *Context) AddTransactionListener(listener TransactionListener) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, listener)
}

// RemoveTransactionListener 移除第一个与参数同一身份的监听器
// 不存在时为空操作。移除后该监听器不会再收到后续事件
func (c *Context) RemoveTransactionListener(listener TransactionListener) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, registered := range c.listeners {
		if registered == listener {
			c.listeners = append(c.listeners[:i], c.listeners[i+1:]...)
			return
		}
	}
}

// snapshotListeners 在锁内复制监听器列表
// 派发遍历快照进行，派发期间的 Add/Remove 不影响本次派发
func (c *Context) snapshotListeners() []TransactionListener {
	c.mu.Lock()
	defer c.mu.Unlock()

	snapshot := make([]TransactionListener, len(c.listeners))
	copy(snapshot, c.listeners)
	return snapshot
}

// ===== 默认会话句柄 =====

// signingSession 基于操作员私钥的默认会话实现
// 只提供身份与签名能力；提交通道未注入时 SubmitRaw 返回 ErrNoSubmitter
type signingSession struct {
	operatorID string
	key        *wallet.OperatorKey
	submitter  Submitter
}

// newSigningSession 创建默认会话
func newSigningSession(operatorID string, key *wallet.OperatorKey, submitter Submitter) *signingSession {
	return &signingSession{
		operatorID: operatorID,
		key:        key,
		submitter:  submitter,
	}
}

// OperatorID 返回操作员账户ID
func (s *signingSession) OperatorID() string {
	return s.operatorID
}

// OperatorPublicKey 返回 hex 编码的操作员公钥
func (s *signingSession) OperatorPublicKey() string {
	return s.key.PublicKeyHex()
}

// Sign 用操作员私钥签名
func (s *signingSession) Sign(message []byte) ([]byte, error) {
	return s.key.Sign(message)
}

// SubmitRaw 提交原始交易
func (s *signingSession) SubmitRaw(ctx context.Context, tx []byte) (string, error) {
	if s.submitter == nil {
		return "", ErrNoSubmitter
	}
	return s.submitter(ctx, tx)
}

// Close 释放会话资源
func (s *signingSession) Close() error {
	return nil
}

// 确保实现了Session接口
var _ ledger.Session = (*signingSession)(nil)

// now 可注入的时钟，测试用
var now = time.Now
