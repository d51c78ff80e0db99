package mirror

import (
	"encoding/json"
	"strconv"
)

// 原始响应字段的宽容提取辅助函数
// 镜像节点的数值字段在不同端点间形态不一（数字/字符串），
// 这里统一做宽容解析：形态不符时返回零值，绝不报错

// strField 提取字符串字段，缺失或类型不符返回空串
func strField(raw RawObject, key string) string {
	if s, ok := raw[key].(string); ok {
		return s
	}
	return ""
}

// boolField 提取布尔字段，缺失或类型不符返回 false
func boolField(raw RawObject, key string) bool {
	if b, ok := raw[key].(bool); ok {
		return b
	}
	return false
}

// int64Field 提取整数字段（支持 json.Number、float64 和十进制字符串）
func int64Field(raw RawObject, key string) int64 {
	val, ok := raw[key]
	if !ok {
		return 0
	}
	switch v := val.(type) {
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return n
		}
		// 兜底：部分端点会返回带小数点的整数值
		if f, err := v.Float64(); err == nil {
			return int64(f)
		}
	case float64:
		return int64(v)
	case string:
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return 0
}

// int64PtrField 提取可选整数字段，缺失或为 null 时返回 nil
func int64PtrField(raw RawObject, key string) *int64 {
	val, ok := raw[key]
	if !ok || val == nil {
		return nil
	}
	n := int64Field(raw, key)
	return &n
}

// f64Field 提取浮点字段（支持 json.Number、float64 和字符串）
func f64Field(raw RawObject, key string) float64 {
	val, ok := raw[key]
	if !ok {
		return 0
	}
	switch v := val.(type) {
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return f
		}
	case float64:
		return v
	case string:
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return 0
}

// objField 提取嵌套对象字段，缺失或类型不符返回 nil
func objField(raw RawObject, key string) RawObject {
	switch v := raw[key].(type) {
	case map[string]interface{}:
		return RawObject(v)
	case RawObject:
		return v
	}
	return nil
}

// arrField 提取数组字段，缺失或类型不符返回 nil
func arrField(raw RawObject, key string) []interface{} {
	if a, ok := raw[key].([]interface{}); ok {
		return a
	}
	return nil
}

// objSlice 把原始数组中的对象元素依次取出，非对象元素被跳过
func objSlice(arr []interface{}) []RawObject {
	out := make([]RawObject, 0, len(arr))
	for _, el := range arr {
		if m, ok := el.(map[string]interface{}); ok {
			out = append(out, RawObject(m))
		}
	}
	return out
}

// keyField 提取公钥对象字段（{"_type": ..., "key": ...}），缺失时返回 nil
func keyField(raw RawObject, key string) *PublicKey {
	obj := objField(raw, key)
	if obj == nil {
		return nil
	}
	return &PublicKey{
		Type: strField(obj, "_type"),
		Key:  strField(obj, "key"),
	}
}
