package main

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/hashgrove/v1/core/mirror"
)

// tokenCmd 代币相关命令
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "代币与 NFT 查询",
	Long:  "查询代币详情、自定义费用与 NFT 实例",
}

// tokenInfoCmd 查询代币详情
var tokenInfoCmd = &cobra.Command{
	Use:   "info <token-id>",
	Short: "查询代币详情",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := getMirror()
		if err != nil {
			return err
		}
		ctx, cancel := cmdContext()
		defer cancel()

		info, err := m.Token(ctx, args[0])
		if err != nil {
			return err
		}

		if globalFlags.JSON {
			return printResult(info)
		}

		rows := pterm.TableData{
			{"代币ID", info.TokenID},
			{"名称", info.Name},
			{"符号", info.Symbol},
			{"类型", info.Type},
			{"小数位", fmt.Sprintf("%d", info.Decimals)},
			{"总供应量", fmt.Sprintf("%d", info.TotalSupply)},
			{"金库账户", info.TreasuryAccountID},
			{"已暂停", fmt.Sprintf("%v", info.Paused)},
		}
		if err := pterm.DefaultTable.WithData(rows).Render(); err != nil {
			return err
		}

		if len(info.CustomFees) > 0 {
			pterm.Info.Printfln("自定义费用 (%d 条):", len(info.CustomFees))
			feeRows := pterm.TableData{{"类型", "接收账户", "明细"}}
			for _, fee := range info.CustomFees {
				feeRows = append(feeRows, []string{string(fee.Type), fee.CollectorAccountID, describeFee(fee)})
			}
			return pterm.DefaultTable.WithHasHeader().WithData(feeRows).Render()
		}
		return nil
	},
}

// describeFee 按费用类型渲染明细列
func describeFee(fee mirror.CustomFee) string {
	switch fee.Type {
	case mirror.CustomFeeFixed:
		denom := fee.DenominatingTokenID
		if denom == "" {
			denom = "hbar"
		}
		return fmt.Sprintf("%d (%s)", fee.Amount, denom)
	case mirror.CustomFeeFractional:
		return fmt.Sprintf("%d/%d min=%d max=%d", fee.Numerator, fee.Denominator, fee.Minimum, fee.Maximum)
	case mirror.CustomFeeRoyalty:
		if fee.FallbackFee != nil {
			return fmt.Sprintf("%d/%d fallback=%d", fee.Numerator, fee.Denominator, fee.FallbackFee.Amount)
		}
		return fmt.Sprintf("%d/%d", fee.Numerator, fee.Denominator)
	}
	return ""
}

// tokenNftsCmd 查询代币下的 NFT 列表
var tokenNftsCmd = &cobra.Command{
	Use:   "nfts <token-id>",
	Short: "查询代币下的 NFT 列表",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := getMirror()
		if err != nil {
			return err
		}
		ctx, cancel := cmdContext()
		defer cancel()

		page, err := m.TokenNfts(ctx, args[0])
		if err != nil {
			return err
		}
		return printResult(page)
	},
}

// tokenNftCmd 查询单个 NFT
var tokenNftCmd = &cobra.Command{
	Use:   "nft <token-id> <serial>",
	Short: "查询单个 NFT",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		serial, err := parseSerial(args[1])
		if err != nil {
			return err
		}

		m, err := getMirror()
		if err != nil {
			return err
		}
		ctx, cancel := cmdContext()
		defer cancel()

		nft, err := m.Nft(ctx, args[0], serial)
		if err != nil {
			return err
		}
		return printResult(nft)
	},
}

func parseSerial(s string) (int64, error) {
	var serial int64
	if _, err := fmt.Sscanf(s, "%d", &serial); err != nil || serial <= 0 {
		return 0, fmt.Errorf("invalid serial number: %q", s)
	}
	return serial, nil
}

func init() {
	tokenCmd.AddCommand(tokenInfoCmd)
	tokenCmd.AddCommand(tokenNftsCmd)
	tokenCmd.AddCommand(tokenNftCmd)
}
