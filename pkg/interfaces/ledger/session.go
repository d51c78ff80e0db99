// Package ledger 定义账本会话的核心能力接口
//
// 会话句柄是外部协作者：它绑定一个网络和一个操作员身份，
// 负责真正的交易构建、签名与提交。SDK 核心只消费这个接口，
// 从不自行构建账本交易
package ledger

import "context"

// Session 账本会话句柄
// 绑定单一网络与单一操作员身份的不透明能力句柄
type Session interface {
	// OperatorID 返回操作员账户ID
	OperatorID() string

	// OperatorPublicKey 返回 hex 编码的操作员公钥
	OperatorPublicKey() string

	// Sign 用操作员私钥对消息签名
	Sign(message []byte) ([]byte, error)

	// SubmitRaw 提交已序列化的原始交易
	// 返回: 交易ID
	SubmitRaw(ctx context.Context, tx []byte) (string, error)

	// Close 释放会话持有的资源
	Close() error
}
