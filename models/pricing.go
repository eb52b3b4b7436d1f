package models

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// PricingType 定价类型
type PricingType string

const (
	PricingFree     PricingType = "free"
	PricingFreemium PricingType = "freemium"
	PricingPaid     PricingType = "paid"
	PricingCustom   PricingType = "custom"
)

// Pricing 工具定价，Free | Freemium{StartingAmount} | Paid{StartingAmount} | Custom
// 目录里既有 "$10/mo freemium" 这样的描述串，也有 {type, startingAmount} 结构，
// 统一在 ParsePricing / UnmarshalYAML / UnmarshalJSON 处解析
type Pricing struct {
	Type           PricingType `json:"type"`
	StartingAmount float64     `json:"startingAmount,omitempty"`
	// Raw 原始描述串，结构化定价时为空
	Raw string `json:"raw,omitempty"`
}

var dollarAmount = regexp.MustCompile(`\$\s*(\d+(?:\.\d+)?)`)

// ParsePricing 解析扁平描述串，无法识别的金额按 0 处理
func ParsePricing(raw string) Pricing {
	s := strings.ToLower(strings.TrimSpace(raw))
	p := Pricing{Raw: raw, StartingAmount: extractAmount(s)}

	switch {
	case strings.Contains(s, "freemium"):
		p.Type = PricingFreemium
	case strings.Contains(s, "custom"), strings.Contains(s, "contact"), strings.Contains(s, "quote"):
		p.Type = PricingCustom
	case strings.Contains(s, "free") && p.StartingAmount == 0:
		p.Type = PricingFree
	case strings.Contains(s, "paid"), p.StartingAmount > 0:
		p.Type = PricingPaid
	default:
		p.Type = PricingCustom
	}
	return p
}

func extractAmount(s string) float64 {
	m := dollarAmount.FindStringSubmatch(s)
	if len(m) < 2 {
		return 0
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0
	}
	return v
}

// NewPricing 由结构化字段构造定价，未知类型回退为描述串解析
func NewPricing(typ string, startingAmount float64) Pricing {
	t := PricingType(strings.ToLower(strings.TrimSpace(typ)))
	switch t {
	case PricingFree, PricingFreemium, PricingPaid, PricingCustom:
	default:
		p := ParsePricing(typ)
		if startingAmount > 0 {
			p.StartingAmount = startingAmount
		}
		return p
	}
	if startingAmount < 0 {
		startingAmount = 0
	}
	return Pricing{Type: t, StartingAmount: startingAmount}
}

// Price 用于预算比较的月度价格
func (p Pricing) Price() float64 {
	if p.StartingAmount < 0 {
		return 0
	}
	return p.StartingAmount
}

// String 返回便于展示的定价描述
func (p Pricing) String() string {
	if p.Raw != "" {
		return p.Raw
	}
	if p.StartingAmount > 0 {
		return fmt.Sprintf("%s from $%g", p.Type, p.StartingAmount)
	}
	return string(p.Type)
}

type structuredPricing struct {
	Type           string  `json:"type" yaml:"type"`
	StartingAmount float64 `json:"startingAmount" yaml:"startingAmount"`
}

// UnmarshalYAML 同时接受标量描述串和 {type, startingAmount} 映射
func (p *Pricing) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*p = ParsePricing(node.Value)
		return nil
	case yaml.MappingNode:
		var sp structuredPricing
		if err := node.Decode(&sp); err != nil {
			return fmt.Errorf("decode pricing: %w", err)
		}
		*p = NewPricing(sp.Type, sp.StartingAmount)
		return nil
	default:
		*p = Pricing{Type: PricingCustom}
		return nil
	}
}

// UnmarshalJSON 同时接受字符串和对象两种形式
func (p *Pricing) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err == nil {
		*p = ParsePricing(raw)
		return nil
	}
	var sp structuredPricing
	if err := json.Unmarshal(data, &sp); err != nil {
		// 无法解析的定价按最宽松处理
		*p = Pricing{Type: PricingCustom}
		return nil
	}
	*p = NewPricing(sp.Type, sp.StartingAmount)
	return nil
}
