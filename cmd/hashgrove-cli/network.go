package main

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// networkCmd 网络信息相关命令
var networkCmd = &cobra.Command{
	Use:   "network",
	Short: "网络信息查询",
	Long:  "查询汇率、供应量与质押信息",
}

// networkRatesCmd 查询汇率
var networkRatesCmd = &cobra.Command{
	Use:   "rates",
	Short: "查询当前与下期汇率",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := getMirror()
		if err != nil {
			return err
		}
		ctx, cancel := cmdContext()
		defer cancel()

		rates, err := m.ExchangeRates(ctx)
		if err != nil {
			return err
		}

		if globalFlags.JSON {
			return printResult(rates)
		}

		rows := pterm.TableData{
			{"周期", "美分等值", "hbar 等值", "过期时间"},
			{"当前", fmt.Sprintf("%d", rates.CurrentRate.CentEquivalent), fmt.Sprintf("%d", rates.CurrentRate.HbarEquivalent), fmt.Sprintf("%d", rates.CurrentRate.ExpirationTime)},
			{"下期", fmt.Sprintf("%d", rates.NextRate.CentEquivalent), fmt.Sprintf("%d", rates.NextRate.HbarEquivalent), fmt.Sprintf("%d", rates.NextRate.ExpirationTime)},
		}
		return pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
	},
}

// networkSupplyCmd 查询供应量
var networkSupplyCmd = &cobra.Command{
	Use:   "supply",
	Short: "查询网络供应量",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := getMirror()
		if err != nil {
			return err
		}
		ctx, cancel := cmdContext()
		defer cancel()

		supply, err := m.NetworkSupply(ctx)
		if err != nil {
			return err
		}

		if globalFlags.JSON {
			return printResult(supply)
		}

		pterm.Info.Printfln("已释放: %s / 总量: %s (快照 %s)", supply.ReleasedSupply, supply.TotalSupply, supply.Timestamp)
		return nil
	},
}

// networkStakeCmd 查询质押信息
var networkStakeCmd = &cobra.Command{
	Use:   "stake",
	Short: "查询网络质押信息",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := getMirror()
		if err != nil {
			return err
		}
		ctx, cancel := cmdContext()
		defer cancel()

		stake, err := m.NetworkStake(ctx)
		if err != nil {
			return err
		}
		return printResult(stake)
	},
}

func init() {
	networkCmd.AddCommand(networkRatesCmd)
	networkCmd.AddCommand(networkSupplyCmd)
	networkCmd.AddCommand(networkStakeCmd)
}
