package mirror

import "sort"

// RawObject 一次镜像节点响应体解析出的无类型对象
// 键为 snake_case 字段名，数值以 json.Number 形式保留精度
type RawObject map[string]interface{}

// Converter 纯转换函数 - 把一个原始对象映射为一个领域记录
// 必须无 I/O、无状态，且对满足最低形态要求的任意输入都不失败
type Converter[T any] func(raw RawObject) T

// Page 统一的分页查询结果
type Page[T any] struct {
	Data  []T       // 数据项，保持上游数组顺序
	Links PageLinks // 分页链接
}

// PageLinks 分页链接
// Next 为空串表示没有下一页；上游的 null/缺失/空串都归一为空串，
// 空串永远不会被当作可用的下一页路径
type PageLinks struct {
	Next string // 下一页的相对路径
}

// HasNext 是否存在下一页
func (p Page[T]) HasNext() bool {
	return p.Links.Next != ""
}

// ConvertPage 把一个原始响应对象包装为统一分页结果
//
// dataKey 指定数据数组所在的顶层键（按端点固定，见 client.go 的端点表）。
// dataKey 为空串时退化为通用扫描：在所有非 links 顶层键中收集数组值的
// 候选键，按键名字典序取第一个 —— Go 的 map 迭代顺序不确定，
// 字典序是这里唯一可复现的平局裁决，仅供端点类型未知的通用翻页使用。
//
// 没有任何限定数组键时返回空页，不是错误：部分端点的零结果响应
// 根本不携带数组键。
func ConvertPage[T any](raw RawObject, dataKey string, conv Converter[T]) Page[T] {
	arr := dataArray(raw, dataKey)

	data := make([]T, 0, len(arr))
	for _, el := range arr {
		obj, ok := el.(map[string]interface{})
		if !ok {
			continue
		}
		data = append(data, conv(RawObject(obj)))
	}

	return Page[T]{
		Data:  data,
		Links: PageLinks{Next: nextLink(raw)},
	}
}

// dataArray 定位数据数组
func dataArray(raw RawObject, dataKey string) []interface{} {
	if dataKey != "" {
		return arrField(raw, dataKey)
	}

	// 通用扫描：收集全部候选后按字典序裁决
	var candidates []string
	for key, val := range raw {
		if key == "links" {
			continue
		}
		if _, ok := val.([]interface{}); ok {
			candidates = append(candidates, key)
		}
	}
	if len(candidates) == 0 {
		return nil
	}
	sort.Strings(candidates)
	return arrField(raw, candidates[0])
}

// nextLink 读取 links.next，null 或缺失归一为空串
func nextLink(raw RawObject) string {
	links := objField(raw, "links")
	if links == nil {
		return ""
	}
	return strField(links, "next")
}
