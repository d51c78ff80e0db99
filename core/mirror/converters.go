package mirror

// 响应转换器 - 每个镜像节点端点形态对应一个纯转换函数
// 转换器只做形态映射：不做 I/O、不校验字段格式、不为缺失的
// 可选字段编造默认值（缺失即零值/nil）

// ConvertAccount 转换 /accounts/{id} 响应
func ConvertAccount(raw RawObject) AccountInfo {
	info := AccountInfo{
		AccountID:                strField(raw, "account"),
		Alias:                    strField(raw, "alias"),
		EVMAddress:               strField(raw, "evm_address"),
		Deleted:                  boolField(raw, "deleted"),
		Memo:                     strField(raw, "memo"),
		Key:                      keyField(raw, "key"),
		AutoRenewPeriod:          int64Field(raw, "auto_renew_period"),
		EthereumNonce:            int64Field(raw, "ethereum_nonce"),
		MaxAutoTokenAssociations: int64Field(raw, "max_automatic_token_associations"),
		CreatedTimestamp:         strField(raw, "created_timestamp"),
		StakedAccountID:          strField(raw, "staked_account_id"),
		StakedNodeID:             int64PtrField(raw, "staked_node_id"),
		PendingReward:            int64Field(raw, "pending_reward"),
	}

	if balance := objField(raw, "balance"); balance != nil {
		info.Balance = ConvertAccountBalance(balance)
	}

	return info
}

// ConvertAccountBalance 转换账户响应中内嵌的 balance 对象
func ConvertAccountBalance(raw RawObject) AccountBalance {
	balance := AccountBalance{
		Balance:   int64Field(raw, "balance"),
		Timestamp: strField(raw, "timestamp"),
	}

	for _, token := range objSlice(arrField(raw, "tokens")) {
		balance.Tokens = append(balance.Tokens, TokenBalance{
			TokenID: strField(token, "token_id"),
			Balance: int64Field(token, "balance"),
		})
	}

	return balance
}

// ConvertNft 转换单个 NFT 对象（/accounts/{id}/nfts 与 /tokens/{id}/nfts 共用）
func ConvertNft(raw RawObject) Nft {
	return Nft{
		TokenID:           strField(raw, "token_id"),
		AccountID:         strField(raw, "account_id"),
		SerialNumber:      int64Field(raw, "serial_number"),
		Metadata:          strField(raw, "metadata"),
		Deleted:           boolField(raw, "deleted"),
		CreatedTimestamp:  strField(raw, "created_timestamp"),
		ModifiedTimestamp: strField(raw, "modified_timestamp"),
		Spender:           strField(raw, "spender"),
		DelegatingSpender: strField(raw, "delegating_spender"),
	}
}

// ConvertToken 转换 /tokens/{id} 响应
func ConvertToken(raw RawObject) TokenInfo {
	info := TokenInfo{
		TokenID:           strField(raw, "token_id"),
		Name:              strField(raw, "name"),
		Symbol:            strField(raw, "symbol"),
		Decimals:          int64Field(raw, "decimals"),
		TotalSupply:       int64Field(raw, "total_supply"),
		MaxSupply:         int64Field(raw, "max_supply"),
		Type:              strField(raw, "type"),
		SupplyType:        strField(raw, "supply_type"),
		TreasuryAccountID: strField(raw, "treasury_account_id"),
		Memo:              strField(raw, "memo"),
		Deleted:           boolField(raw, "deleted"),
		Paused:            strField(raw, "pause_status") == "PAUSED",
		CreatedTimestamp:  strField(raw, "created_timestamp"),
		ModifiedTimestamp: strField(raw, "modified_timestamp"),
		AdminKey:          keyField(raw, "admin_key"),
		SupplyKey:         keyField(raw, "supply_key"),
	}

	if fees := objField(raw, "custom_fees"); fees != nil {
		info.CustomFees = ConvertCustomFees(fees)
	}

	return info
}

// ConvertTokenListItem 转换 /tokens 列表端点的精简代币对象
func ConvertTokenListItem(raw RawObject) TokenListItem {
	return TokenListItem{
		TokenID:  strField(raw, "token_id"),
		Name:     strField(raw, "name"),
		Symbol:   strField(raw, "symbol"),
		Type:     strField(raw, "type"),
		Decimals: int64Field(raw, "decimals"),
	}
}

// ConvertCustomFees 把 custom_fees 对象的三个来源数组扁平化为单一序列
//
// 顺序是契约：先全部固定费用、再全部比例费用、最后全部版税费用，
// 各来源数组内保持上游相对顺序。消费方按位置展示费用条目，
// 改变顺序会破坏展示层
func ConvertCustomFees(raw RawObject) []CustomFee {
	var fees []CustomFee

	for _, fee := range objSlice(arrField(raw, "fixed_fees")) {
		fees = append(fees, convertFixedFee(fee))
	}
	for _, fee := range objSlice(arrField(raw, "fractional_fees")) {
		fees = append(fees, convertFractionalFee(fee))
	}
	for _, fee := range objSlice(arrField(raw, "royalty_fees")) {
		fees = append(fees, convertRoyaltyFee(fee))
	}

	return fees
}

// convertFixedFee 转换固定费用条目
func convertFixedFee(raw RawObject) CustomFee {
	return CustomFee{
		Type:                CustomFeeFixed,
		CollectorAccountID:  strField(raw, "collector_account_id"),
		AllCollectorsExempt: boolField(raw, "all_collectors_are_exempt"),
		Amount:              int64Field(raw, "amount"),
		DenominatingTokenID: strField(raw, "denominating_token_id"),
	}
}

// convertFractionalFee 转换比例费用条目
func convertFractionalFee(raw RawObject) CustomFee {
	fee := CustomFee{
		Type:                CustomFeeFractional,
		CollectorAccountID:  strField(raw, "collector_account_id"),
		AllCollectorsExempt: boolField(raw, "all_collectors_are_exempt"),
		Minimum:             int64Field(raw, "minimum"),
		Maximum:             int64Field(raw, "maximum"),
		NetOfTransfers:      boolField(raw, "net_of_transfers"),
		DenominatingTokenID: strField(raw, "denominating_token_id"),
	}

	if amount := objField(raw, "amount"); amount != nil {
		fee.Numerator = int64Field(amount, "numerator")
		fee.Denominator = int64Field(amount, "denominator")
	}

	return fee
}

// convertRoyaltyFee 转换版税费用条目
func convertRoyaltyFee(raw RawObject) CustomFee {
	fee := CustomFee{
		Type:                CustomFeeRoyalty,
		CollectorAccountID:  strField(raw, "collector_account_id"),
		AllCollectorsExempt: boolField(raw, "all_collectors_are_exempt"),
	}

	if amount := objField(raw, "amount"); amount != nil {
		fee.Numerator = int64Field(amount, "numerator")
		fee.Denominator = int64Field(amount, "denominator")
	}

	if fallback := objField(raw, "fallback_fee"); fallback != nil {
		fee.FallbackFee = &FixedFallbackFee{
			Amount:              int64Field(fallback, "amount"),
			DenominatingTokenID: strField(fallback, "denominating_token_id"),
		}
	}

	return fee
}

// ConvertTopicMessage 转换主题消息对象
func ConvertTopicMessage(raw RawObject) TopicMessage {
	msg := TopicMessage{
		TopicID:            strField(raw, "topic_id"),
		SequenceNumber:     int64Field(raw, "sequence_number"),
		ConsensusTimestamp: strField(raw, "consensus_timestamp"),
		Message:            strField(raw, "message"),
		PayerAccountID:     strField(raw, "payer_account_id"),
		RunningHash:        strField(raw, "running_hash"),
		RunningHashVersion: int64Field(raw, "running_hash_version"),
	}

	if chunk := objField(raw, "chunk_info"); chunk != nil {
		info := &ChunkInfo{
			Number: int64Field(chunk, "number"),
			Total:  int64Field(chunk, "total"),
		}
		// initial_transaction_id 在不同镜像版本间既可能是字符串也可能是对象
		switch v := chunk["initial_transaction_id"].(type) {
		case string:
			info.InitialTransactionID = v
		case map[string]interface{}:
			info.InitialTransactionID = strField(RawObject(v), "transaction_valid_start")
		}
		msg.ChunkInfo = info
	}

	return msg
}

// ConvertTransaction 转换历史交易对象
func ConvertTransaction(raw RawObject) TransactionRecord {
	record := TransactionRecord{
		TransactionID:       strField(raw, "transaction_id"),
		TransactionHash:     strField(raw, "transaction_hash"),
		Name:                strField(raw, "name"),
		Result:              strField(raw, "result"),
		ConsensusTimestamp:  strField(raw, "consensus_timestamp"),
		ValidStartTimestamp: strField(raw, "valid_start_timestamp"),
		ChargedTxFee:        int64Field(raw, "charged_tx_fee"),
		MaxFee:              strField(raw, "max_fee"),
		MemoBase64:          strField(raw, "memo_base64"),
		Node:                strField(raw, "node"),
		EntityID:            strField(raw, "entity_id"),
		Scheduled:           boolField(raw, "scheduled"),
	}

	for _, transfer := range objSlice(arrField(raw, "transfers")) {
		record.Transfers = append(record.Transfers, Transfer{
			Account:    strField(transfer, "account"),
			Amount:     int64Field(transfer, "amount"),
			IsApproval: boolField(transfer, "is_approval"),
		})
	}

	for _, transfer := range objSlice(arrField(raw, "token_transfers")) {
		record.TokenTransfers = append(record.TokenTransfers, TokenTransfer{
			TokenID:    strField(transfer, "token_id"),
			Account:    strField(transfer, "account"),
			Amount:     int64Field(transfer, "amount"),
			IsApproval: boolField(transfer, "is_approval"),
		})
	}

	for _, transfer := range objSlice(arrField(raw, "nft_transfers")) {
		record.NftTransfers = append(record.NftTransfers, NftTransfer{
			TokenID:           strField(transfer, "token_id"),
			SenderAccountID:   strField(transfer, "sender_account_id"),
			ReceiverAccountID: strField(transfer, "receiver_account_id"),
			SerialNumber:      int64Field(transfer, "serial_number"),
			IsApproval:        boolField(transfer, "is_approval"),
		})
	}

	return record
}

// ConvertExchangeRates 转换 /network/exchangerate 响应
func ConvertExchangeRates(raw RawObject) ExchangeRateInfo {
	info := ExchangeRateInfo{
		Timestamp: strField(raw, "timestamp"),
	}

	if current := objField(raw, "current_rate"); current != nil {
		info.CurrentRate = convertExchangeRate(current)
	}
	if next := objField(raw, "next_rate"); next != nil {
		info.NextRate = convertExchangeRate(next)
	}

	return info
}

// convertExchangeRate 转换单个汇率周期对象
func convertExchangeRate(raw RawObject) ExchangeRate {
	return ExchangeRate{
		CentEquivalent: int64Field(raw, "cent_equivalent"),
		HbarEquivalent: int64Field(raw, "hbar_equivalent"),
		ExpirationTime: int64Field(raw, "expiration_time"),
	}
}

// ConvertNetworkSupply 转换 /network/supply 响应
// 供应量保持十进制字符串：tinybar 总量超出 float64 的安全整数范围
func ConvertNetworkSupply(raw RawObject) NetworkSupply {
	return NetworkSupply{
		ReleasedSupply: supplyString(raw, "released_supply"),
		TotalSupply:    supplyString(raw, "total_supply"),
		Timestamp:      strField(raw, "timestamp"),
	}
}

// supplyString 供应量字段既可能是字符串也可能是数字
func supplyString(raw RawObject, key string) string {
	switch v := raw[key].(type) {
	case string:
		return v
	case interface{ String() string }:
		// json.Number
		return v.String()
	}
	return ""
}

// ConvertNetworkStake 转换 /network/stake 响应
func ConvertNetworkStake(raw RawObject) NetworkStake {
	return NetworkStake{
		MaxStakeRewarded:            int64Field(raw, "max_stake_rewarded"),
		MaxStakingRewardRatePerHbar: int64Field(raw, "max_staking_reward_rate_per_hbar"),
		NodeRewardFeeFraction:       f64Field(raw, "node_reward_fee_fraction"),
		StakeTotal:                  int64Field(raw, "stake_total"),
		StakingPeriod:               stakingPeriodString(raw),
		StakingRewardFeeFraction:    f64Field(raw, "staking_reward_fee_fraction"),
		StakingRewardRate:           int64Field(raw, "staking_reward_rate"),
		StakingRewardsReserved:      int64Field(raw, "staking_rewards_reserved"),
	}
}

// stakingPeriodString staking_period 既可能是时间戳字符串也可能是对象
func stakingPeriodString(raw RawObject) string {
	switch v := raw["staking_period"].(type) {
	case string:
		return v
	case map[string]interface{}:
		return strField(RawObject(v), "from")
	}
	return ""
}
