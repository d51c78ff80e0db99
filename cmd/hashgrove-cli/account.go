package main

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	accountTokenFilter string
	accountTxType      string
)

// accountCmd 账户相关命令
var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "账户查询",
	Long:  "查询账户信息、余额、NFT 持仓、代币关联与交易记录",
}

// accountInfoCmd 查询账户信息
var accountInfoCmd = &cobra.Command{
	Use:   "info <account-id>",
	Short: "查询账户信息",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := getMirror()
		if err != nil {
			return err
		}
		ctx, cancel := cmdContext()
		defer cancel()

		info, err := m.Account(ctx, args[0])
		if err != nil {
			return err
		}

		if globalFlags.JSON {
			return printResult(info)
		}

		rows := pterm.TableData{
			{"账户ID", info.AccountID},
			{"余额 (tinybar)", fmt.Sprintf("%d", info.Balance.Balance)},
			{"备注", info.Memo},
			{"已删除", fmt.Sprintf("%v", info.Deleted)},
			{"EVM 地址", info.EVMAddress},
			{"创建时间", info.CreatedTimestamp},
		}
		if info.Key != nil {
			rows = append(rows, []string{"密钥类型", info.Key.Type})
		}
		return pterm.DefaultTable.WithData(rows).Render()
	},
}

// accountBalanceCmd 查询账户余额
var accountBalanceCmd = &cobra.Command{
	Use:   "balance <account-id>",
	Short: "查询账户余额",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := getMirror()
		if err != nil {
			return err
		}
		ctx, cancel := cmdContext()
		defer cancel()

		balance, err := m.AccountBalance(ctx, args[0])
		if err != nil {
			return err
		}

		if globalFlags.JSON {
			return printResult(balance)
		}

		pterm.Info.Printfln("余额: %d tinybar (快照 %s)", balance.Balance, balance.Timestamp)
		if len(balance.Tokens) > 0 {
			rows := pterm.TableData{{"代币ID", "余额"}}
			for _, t := range balance.Tokens {
				rows = append(rows, []string{t.TokenID, fmt.Sprintf("%d", t.Balance)})
			}
			return pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
		}
		return nil
	},
}

// accountNftsCmd 查询账户 NFT 持仓
var accountNftsCmd = &cobra.Command{
	Use:   "nfts <account-id>",
	Short: "查询账户持有的 NFT",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := getMirror()
		if err != nil {
			return err
		}
		ctx, cancel := cmdContext()
		defer cancel()

		var page interface{}
		if accountTokenFilter != "" {
			p, err := m.AccountNftsByToken(ctx, args[0], accountTokenFilter)
			if err != nil {
				return err
			}
			page = p
		} else {
			p, err := m.AccountNfts(ctx, args[0])
			if err != nil {
				return err
			}
			page = p
		}
		return printResult(page)
	},
}

// accountTokensCmd 查询账户关联代币
var accountTokensCmd = &cobra.Command{
	Use:   "tokens <account-id>",
	Short: "查询账户关联的代币",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := getMirror()
		if err != nil {
			return err
		}
		ctx, cancel := cmdContext()
		defer cancel()

		page, err := m.AccountTokens(ctx, args[0])
		if err != nil {
			return err
		}

		if globalFlags.JSON {
			return printResult(page)
		}

		rows := pterm.TableData{{"代币ID", "名称", "符号", "类型"}}
		for _, t := range page.Data {
			rows = append(rows, []string{t.TokenID, t.Name, t.Symbol, t.Type})
		}
		if err := pterm.DefaultTable.WithHasHeader().WithData(rows).Render(); err != nil {
			return err
		}
		if page.HasNext() {
			pterm.Info.Printfln("更多结果: %s", page.Links.Next)
		}
		return nil
	},
}

// accountTxCmd 查询账户交易记录
var accountTxCmd = &cobra.Command{
	Use:   "transactions <account-id>",
	Short: "查询账户相关交易",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := getMirror()
		if err != nil {
			return err
		}
		ctx, cancel := cmdContext()
		defer cancel()

		var err2 error
		var page interface{}
		if accountTxType != "" {
			page, err2 = m.AccountTransactionsByType(ctx, args[0], accountTxType)
		} else {
			page, err2 = m.AccountTransactions(ctx, args[0])
		}
		if err2 != nil {
			return err2
		}
		return printResult(page)
	},
}

func init() {
	accountNftsCmd.Flags().StringVar(&accountTokenFilter, "token", "", "仅显示指定代币的 NFT")
	accountTxCmd.Flags().StringVar(&accountTxType, "type", "", "按交易类型过滤，如 CRYPTOTRANSFER")

	accountCmd.AddCommand(accountInfoCmd)
	accountCmd.AddCommand(accountBalanceCmd)
	accountCmd.AddCommand(accountNftsCmd)
	accountCmd.AddCommand(accountTokensCmd)
	accountCmd.AddCommand(accountTxCmd)
}
