package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/hashgrove/v1/core/config"
	"github.com/hashgrove/v1/core/mirror"
	"github.com/hashgrove/v1/core/transport"
)

// GlobalFlags 全局标志
type GlobalFlags struct {
	Network   string // 网络名称
	MirrorURL string // 镜像节点地址（覆盖网络默认值）
	Timeout   int    // 请求超时（秒）
	JSON      bool   // 以 JSON 输出原始结果
}

var globalFlags GlobalFlags

// rootCmd 根命令
var rootCmd = &cobra.Command{
	Use:   "hashgrove",
	Short: "Hashgrove 账本命令行客户端",
	Long: `Hashgrove CLI - 镜像节点查询工具

通过镜像节点 REST 接口查询账本状态:
- 账户信息、余额、持仓
- 代币与 NFT 详情
- 主题消息
- 交易记录
- 网络汇率、供应量与质押信息

网络选择: --network mainnet|testnet|previewnet，或用 --mirror-url 指定地址。`,
}

// Execute 执行根命令
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		pterm.Error.Printfln("%v", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&globalFlags.Network, "network", "n", "testnet", "目标网络: mainnet|testnet|previewnet")
	rootCmd.PersistentFlags().StringVar(&globalFlags.MirrorURL, "mirror-url", "", "镜像节点地址 (覆盖网络默认值)")
	rootCmd.PersistentFlags().IntVar(&globalFlags.Timeout, "timeout", 30, "请求超时（秒）")
	rootCmd.PersistentFlags().BoolVar(&globalFlags.JSON, "json", false, "以 JSON 输出结果")

	rootCmd.AddCommand(accountCmd)
	rootCmd.AddCommand(tokenCmd)
	rootCmd.AddCommand(topicCmd)
	rootCmd.AddCommand(txCmd)
	rootCmd.AddCommand(networkCmd)
}

// getMirror 按全局标志构造镜像节点客户端
func getMirror() (*mirror.Client, error) {
	baseURL := globalFlags.MirrorURL
	if baseURL == "" {
		n, err := config.ParseNetwork(globalFlags.Network)
		if err != nil {
			return nil, err
		}
		baseURL = n.MirrorURL()
	}

	t := transport.NewRESTTransport(time.Duration(globalFlags.Timeout) * time.Second)
	return mirror.NewClient(baseURL, t), nil
}

// cmdContext 命令执行上下文
func cmdContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), time.Duration(globalFlags.Timeout)*time.Second)
}

// printResult 输出结果
// --json 时输出缩进 JSON，否则由调用方负责表格渲染
func printResult(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func main() {
	Execute()
}
