package mirror

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConvertAccount 测试账户响应转换
func TestConvertAccount(t *testing.T) {
	t.Run("完整账户", func(t *testing.T) {
		raw := decodeRaw(t, `{
			"account": "0.0.1234",
			"alias": "CIQNOWUYAGBLCCVX2VF75U6",
			"evm_address": "0xac384c53f03855fa1b3616052f8ba32c6c2a2fec",
			"deleted": false,
			"memo": "treasury",
			"key": {"_type": "ED25519", "key": "aabbcc"},
			"auto_renew_period": 7776000,
			"ethereum_nonce": 5,
			"max_automatic_token_associations": 10,
			"created_timestamp": "1700000000.000000000",
			"staked_node_id": 3,
			"pending_reward": 150,
			"balance": {
				"balance": 9007199254740993,
				"timestamp": "1700000100.000000000",
				"tokens": [{"token_id": "0.0.5005", "balance": 42}]
			}
		}`)

		info := ConvertAccount(raw)
		assert.Equal(t, "0.0.1234", info.AccountID)
		assert.Equal(t, "treasury", info.Memo)
		require.NotNil(t, info.Key)
		assert.Equal(t, "ED25519", info.Key.Type)
		assert.Equal(t, "aabbcc", info.Key.Key)
		assert.Equal(t, int64(7776000), info.AutoRenewPeriod)
		require.NotNil(t, info.StakedNodeID)
		assert.Equal(t, int64(3), *info.StakedNodeID)
		assert.Equal(t, int64(150), info.PendingReward)

		// tinybar 余额超出 float64 安全整数范围也不能丢精度
		assert.Equal(t, int64(9007199254740993), info.Balance.Balance)
		require.Len(t, info.Balance.Tokens, 1)
		assert.Equal(t, "0.0.5005", info.Balance.Tokens[0].TokenID)
		assert.Equal(t, int64(42), info.Balance.Tokens[0].Balance)
	})

	t.Run("可选字段缺失保持零值", func(t *testing.T) {
		raw := decodeRaw(t, `{"account": "0.0.99", "key": null, "staked_node_id": null}`)

		info := ConvertAccount(raw)
		assert.Equal(t, "0.0.99", info.AccountID)
		assert.Nil(t, info.Key)
		assert.Nil(t, info.StakedNodeID)
		assert.Empty(t, info.Alias)
		assert.Empty(t, info.EVMAddress)
		assert.Zero(t, info.Balance.Balance)
		assert.Empty(t, info.Balance.Tokens)
	})
}

// TestConvertToken 测试代币响应转换
func TestConvertToken(t *testing.T) {
	t.Run("暂停状态映射", func(t *testing.T) {
		paused := ConvertToken(decodeRaw(t, `{"token_id": "0.0.1", "pause_status": "PAUSED"}`))
		assert.True(t, paused.Paused)

		unpaused := ConvertToken(decodeRaw(t, `{"token_id": "0.0.1", "pause_status": "UNPAUSED"}`))
		assert.False(t, unpaused.Paused)

		notApplicable := ConvertToken(decodeRaw(t, `{"token_id": "0.0.1", "pause_status": "NOT_APPLICABLE"}`))
		assert.False(t, notApplicable.Paused)
	})

	t.Run("基础字段", func(t *testing.T) {
		info := ConvertToken(decodeRaw(t, `{
			"token_id": "0.0.5005",
			"name": "Grove Token",
			"symbol": "GRV",
			"decimals": 8,
			"total_supply": 100000000,
			"max_supply": 0,
			"type": "FUNGIBLE_COMMON",
			"supply_type": "INFINITE",
			"treasury_account_id": "0.0.98",
			"admin_key": {"_type": "ECDSA_SECP256K1", "key": "ddeeff"}
		}`))

		assert.Equal(t, "Grove Token", info.Name)
		assert.Equal(t, "GRV", info.Symbol)
		assert.Equal(t, int64(8), info.Decimals)
		assert.Equal(t, "FUNGIBLE_COMMON", info.Type)
		require.NotNil(t, info.AdminKey)
		assert.Equal(t, "ECDSA_SECP256K1", info.AdminKey.Type)
		assert.Nil(t, info.SupplyKey)
		assert.Empty(t, info.CustomFees)
	})
}

// TestConvertCustomFees 测试自定义费用的扁平化顺序
func TestConvertCustomFees(t *testing.T) {
	t.Run("固定到比例到版税的顺序契约", func(t *testing.T) {
		raw := decodeRaw(t, `{
			"royalty_fees": [{
				"collector_account_id": "0.0.7",
				"amount": {"numerator": 1, "denominator": 20},
				"fallback_fee": {"amount": 100, "denominating_token_id": "0.0.5005"}
			}],
			"fractional_fees": [
				{"collector_account_id": "0.0.5", "amount": {"numerator": 1, "denominator": 100}, "minimum": 1, "maximum": 50, "net_of_transfers": true},
				{"collector_account_id": "0.0.6", "amount": {"numerator": 3, "denominator": 100}}
			],
			"fixed_fees": [
				{"collector_account_id": "0.0.3", "amount": 10},
				{"collector_account_id": "0.0.4", "amount": 20, "denominating_token_id": "0.0.5005"}
			]
		}`)

		fees := ConvertCustomFees(raw)
		require.Len(t, fees, 5)

		// 来源数组在 JSON 中的书写顺序无关：固定费用永远在最前
		assert.Equal(t, CustomFeeFixed, fees[0].Type)
		assert.Equal(t, "0.0.3", fees[0].CollectorAccountID)
		assert.Equal(t, int64(10), fees[0].Amount)
		assert.Empty(t, fees[0].DenominatingTokenID)

		assert.Equal(t, CustomFeeFixed, fees[1].Type)
		assert.Equal(t, "0.0.5005", fees[1].DenominatingTokenID)

		assert.Equal(t, CustomFeeFractional, fees[2].Type)
		assert.Equal(t, int64(1), fees[2].Numerator)
		assert.Equal(t, int64(100), fees[2].Denominator)
		assert.Equal(t, int64(50), fees[2].Maximum)
		assert.True(t, fees[2].NetOfTransfers)

		assert.Equal(t, CustomFeeFractional, fees[3].Type)
		assert.Equal(t, "0.0.6", fees[3].CollectorAccountID)

		assert.Equal(t, CustomFeeRoyalty, fees[4].Type)
		assert.Equal(t, int64(1), fees[4].Numerator)
		assert.Equal(t, int64(20), fees[4].Denominator)
		require.NotNil(t, fees[4].FallbackFee)
		assert.Equal(t, int64(100), fees[4].FallbackFee.Amount)
		assert.Equal(t, "0.0.5005", fees[4].FallbackFee.DenominatingTokenID)
	})

	t.Run("全部来源为空返回空序列", func(t *testing.T) {
		fees := ConvertCustomFees(decodeRaw(t, `{"fixed_fees": [], "fractional_fees": [], "royalty_fees": []}`))
		assert.Empty(t, fees)
	})

	t.Run("无回退费用的版税", func(t *testing.T) {
		fees := ConvertCustomFees(decodeRaw(t, `{
			"royalty_fees": [{"collector_account_id": "0.0.7", "amount": {"numerator": 1, "denominator": 10}}]
		}`))
		require.Len(t, fees, 1)
		assert.Nil(t, fees[0].FallbackFee)
	})
}

// TestConvertTopicMessage 测试主题消息转换
func TestConvertTopicMessage(t *testing.T) {
	t.Run("无分片信息", func(t *testing.T) {
		msg := ConvertTopicMessage(decodeRaw(t, `{
			"topic_id": "0.0.7007",
			"sequence_number": 12,
			"consensus_timestamp": "1700000000.000000001",
			"message": "aGVsbG8=",
			"payer_account_id": "0.0.1234",
			"running_hash": "cnVubmluZw==",
			"running_hash_version": 3
		}`))

		assert.Equal(t, "0.0.7007", msg.TopicID)
		assert.Equal(t, int64(12), msg.SequenceNumber)
		assert.Equal(t, "aGVsbG8=", msg.Message)
		assert.Equal(t, int64(3), msg.RunningHashVersion)
		assert.Nil(t, msg.ChunkInfo)
	})

	t.Run("分片信息字符串形式", func(t *testing.T) {
		msg := ConvertTopicMessage(decodeRaw(t, `{
			"sequence_number": 2,
			"chunk_info": {"initial_transaction_id": "0.0.1234@1700000000.000000000", "number": 2, "total": 3}
		}`))

		require.NotNil(t, msg.ChunkInfo)
		assert.Equal(t, "0.0.1234@1700000000.000000000", msg.ChunkInfo.InitialTransactionID)
		assert.Equal(t, int64(2), msg.ChunkInfo.Number)
		assert.Equal(t, int64(3), msg.ChunkInfo.Total)
	})

	t.Run("分片信息对象形式", func(t *testing.T) {
		msg := ConvertTopicMessage(decodeRaw(t, `{
			"sequence_number": 1,
			"chunk_info": {
				"initial_transaction_id": {"account_id": "0.0.1234", "transaction_valid_start": "1700000000.000000000"},
				"number": 1,
				"total": 3
			}
		}`))

		require.NotNil(t, msg.ChunkInfo)
		assert.Equal(t, "1700000000.000000000", msg.ChunkInfo.InitialTransactionID)
	})
}

// TestConvertTransaction 测试交易记录转换
func TestConvertTransaction(t *testing.T) {
	record := ConvertTransaction(decodeRaw(t, `{
		"transaction_id": "0.0.1234-1700000000-000000001",
		"name": "CRYPTOTRANSFER",
		"result": "SUCCESS",
		"consensus_timestamp": "1700000001.000000000",
		"charged_tx_fee": 186550,
		"max_fee": "100000000",
		"node": "0.0.3",
		"scheduled": false,
		"transfers": [
			{"account": "0.0.1234", "amount": -1000},
			{"account": "0.0.5678", "amount": 1000, "is_approval": true}
		],
		"token_transfers": [
			{"token_id": "0.0.5005", "account": "0.0.1234", "amount": -5}
		],
		"nft_transfers": [
			{"token_id": "0.0.6006", "sender_account_id": "0.0.1234", "receiver_account_id": "0.0.5678", "serial_number": 9}
		]
	}`))

	assert.Equal(t, "CRYPTOTRANSFER", record.Name)
	assert.Equal(t, "SUCCESS", record.Result)
	assert.Equal(t, int64(186550), record.ChargedTxFee)

	require.Len(t, record.Transfers, 2)
	assert.Equal(t, int64(-1000), record.Transfers[0].Amount)
	assert.True(t, record.Transfers[1].IsApproval)

	require.Len(t, record.TokenTransfers, 1)
	assert.Equal(t, "0.0.5005", record.TokenTransfers[0].TokenID)

	require.Len(t, record.NftTransfers, 1)
	assert.Equal(t, int64(9), record.NftTransfers[0].SerialNumber)
	assert.Equal(t, "0.0.5678", record.NftTransfers[0].ReceiverAccountID)
}

// TestConvertNetworkSupply 测试供应量转换的数值形态兼容
func TestConvertNetworkSupply(t *testing.T) {
	t.Run("字符串形式", func(t *testing.T) {
		supply := ConvertNetworkSupply(decodeRaw(t, `{
			"released_supply": "3999999999999999949",
			"total_supply": "5000000000000000000",
			"timestamp": "1700000000.000000000"
		}`))

		assert.Equal(t, "3999999999999999949", supply.ReleasedSupply)
		assert.Equal(t, "5000000000000000000", supply.TotalSupply)
	})

	t.Run("数字形式保持十进制字面量", func(t *testing.T) {
		supply := ConvertNetworkSupply(decodeRaw(t, `{
			"released_supply": 3999999999999999949,
			"total_supply": 5000000000000000000
		}`))

		// UseNumber 解码下数字字面量原样保留，不经过 float64
		assert.Equal(t, "3999999999999999949", supply.ReleasedSupply)
		assert.Equal(t, "5000000000000000000", supply.TotalSupply)
	})
}

// TestConvertNetworkStake 测试质押信息转换
func TestConvertNetworkStake(t *testing.T) {
	t.Run("质押周期字符串形式", func(t *testing.T) {
		stake := ConvertNetworkStake(decodeRaw(t, `{
			"stake_total": 35000000000000000,
			"staking_period": "1700000000.000000000",
			"node_reward_fee_fraction": 0.1,
			"staking_reward_rate": 273972602739726
		}`))

		assert.Equal(t, int64(35000000000000000), stake.StakeTotal)
		assert.Equal(t, "1700000000.000000000", stake.StakingPeriod)
		assert.InDelta(t, 0.1, stake.NodeRewardFeeFraction, 1e-9)
	})

	t.Run("质押周期对象形式", func(t *testing.T) {
		stake := ConvertNetworkStake(decodeRaw(t, `{
			"staking_period": {"from": "1700000000.000000000", "to": "1700086400.000000000"}
		}`))

		assert.Equal(t, "1700000000.000000000", stake.StakingPeriod)
	})
}

// TestConvertExchangeRates 测试汇率转换
func TestConvertExchangeRates(t *testing.T) {
	info := ConvertExchangeRates(decodeRaw(t, `{
		"current_rate": {"cent_equivalent": 596987, "hbar_equivalent": 30000, "expiration_time": 1700003600},
		"next_rate": {"cent_equivalent": 594920, "hbar_equivalent": 30000, "expiration_time": 1700007200},
		"timestamp": "1700000000.000000000"
	}`))

	assert.Equal(t, int64(596987), info.CurrentRate.CentEquivalent)
	assert.Equal(t, int64(30000), info.CurrentRate.HbarEquivalent)
	assert.Equal(t, int64(1700007200), info.NextRate.ExpirationTime)
	assert.Equal(t, "1700000000.000000000", info.Timestamp)
}
