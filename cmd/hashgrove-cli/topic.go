package main

import (
	"encoding/base64"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var topicDecode bool

// topicCmd 主题消息相关命令
var topicCmd = &cobra.Command{
	Use:   "topic",
	Short: "主题消息查询",
	Long:  "查询共识主题的消息流与单条消息",
}

// topicMessagesCmd 查询主题消息列表
var topicMessagesCmd = &cobra.Command{
	Use:   "messages <topic-id>",
	Short: "查询主题消息列表",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := getMirror()
		if err != nil {
			return err
		}
		ctx, cancel := cmdContext()
		defer cancel()

		page, err := m.TopicMessages(ctx, args[0])
		if err != nil {
			return err
		}

		if globalFlags.JSON || !topicDecode {
			return printResult(page)
		}

		for _, msg := range page.Data {
			text := msg.Message
			if decoded, err := base64.StdEncoding.DecodeString(msg.Message); err == nil {
				text = string(decoded)
			}
			pterm.Printfln("[%d] %s  %s", msg.SequenceNumber, msg.ConsensusTimestamp, text)
		}
		if page.HasNext() {
			pterm.Info.Printfln("更多结果: %s", page.Links.Next)
		}
		return nil
	},
}

// topicMessageCmd 按序号查询单条消息
var topicMessageCmd = &cobra.Command{
	Use:   "message <topic-id> <sequence>",
	Short: "按序号查询单条主题消息",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		seq, err := parseSerial(args[1])
		if err != nil {
			return err
		}

		m, err := getMirror()
		if err != nil {
			return err
		}
		ctx, cancel := cmdContext()
		defer cancel()

		msg, err := m.TopicMessage(ctx, args[0], seq)
		if err != nil {
			return err
		}
		return printResult(msg)
	},
}

func init() {
	topicMessagesCmd.Flags().BoolVar(&topicDecode, "decode", false, "解码 base64 消息内容后输出")

	topicCmd.AddCommand(topicMessagesCmd)
	topicCmd.AddCommand(topicMessageCmd)
}
