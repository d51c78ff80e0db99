package main

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// txCmd 交易相关命令
var txCmd = &cobra.Command{
	Use:   "tx",
	Short: "交易查询",
	Long:  "按交易ID查询历史交易记录",
}

// txGetCmd 查询交易记录
var txGetCmd = &cobra.Command{
	Use:   "get <transaction-id>",
	Short: "查询交易记录",
	Long: `按交易ID查询历史交易记录。

交易ID格式: <payer>@<seconds>.<nanos>，如 0.0.1234@1700000000.000000001`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := getMirror()
		if err != nil {
			return err
		}
		ctx, cancel := cmdContext()
		defer cancel()

		record, err := m.Transaction(ctx, args[0])
		if err != nil {
			return err
		}

		if globalFlags.JSON {
			return printResult(record)
		}

		rows := pterm.TableData{
			{"交易ID", record.TransactionID},
			{"类型", record.Name},
			{"结果", record.Result},
			{"共识时间", record.ConsensusTimestamp},
			{"手续费 (tinybar)", fmt.Sprintf("%d", record.ChargedTxFee)},
			{"处理节点", record.Node},
		}
		if err := pterm.DefaultTable.WithData(rows).Render(); err != nil {
			return err
		}

		if len(record.Transfers) > 0 {
			transferRows := pterm.TableData{{"账户", "金额"}}
			for _, t := range record.Transfers {
				transferRows = append(transferRows, []string{t.Account, fmt.Sprintf("%d", t.Amount)})
			}
			return pterm.DefaultTable.WithHasHeader().WithData(transferRows).Render()
		}
		return nil
	},
}

func init() {
	txCmd.AddCommand(txGetCmd)
}
