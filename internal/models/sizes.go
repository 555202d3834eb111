package models

import (
	_ "embed"
	"fmt"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Типы изделий
const (
	GarmentBlouse = "Blouse"
	GarmentShirt  = "Shirt"
	GarmentKurta  = "Kurta"
	GarmentDress  = "Dress"
	GarmentPant   = "Pant"
	GarmentOther  = "Other"
)

//go:embed templates.yaml
var templatesYAML []byte

type sizeTemplate struct {
	Type   string   `yaml:"type"`
	Fields []string `yaml:"fields"`
}

type templateRegistry struct {
	types  []string
	fields map[string][]string
}

var registry = mustLoadTemplates(templatesYAML)

func mustLoadTemplates(data []byte) templateRegistry {
	var doc struct {
		Templates []sizeTemplate `yaml:"templates"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		panic(fmt.Sprintf("invalid size templates: %s", err.Error()))
	}
	reg := templateRegistry{fields: make(map[string][]string, len(doc.Templates))}
	for _, t := range doc.Templates {
		reg.types = append(reg.types, t.Type)
		reg.fields[t.Type] = t.Fields
	}
	if _, ok := reg.fields[GarmentOther]; !ok {
		panic("size templates must define " + GarmentOther)
	}
	return reg
}

// SizeEntry - одна мерка: название поля и значение
type SizeEntry struct {
	Label string
	Value string
}

// GarmentTypes - список типов изделий в порядке объявления
func GarmentTypes() []string {
	return slices.Clone(registry.types)
}

// NormalizeGarment - известный тип возвращается как есть, всё остальное становится Other
func NormalizeGarment(garment string) string {
	garment = strings.TrimSpace(garment)
	if _, ok := registry.fields[garment]; ok {
		return garment
	}
	return GarmentOther
}

// SizeTemplate - упорядоченный список мерок для типа изделия
func SizeTemplate(garment string) []string {
	return slices.Clone(registry.fields[NormalizeGarment(garment)])
}

// CollectSizes - мерки строго по шаблону типа: значения обрезаются, отсутствующие становятся пустыми
func CollectSizes(garment string, values map[string]string) map[string]string {
	fields := SizeTemplate(garment)
	sizes := make(map[string]string, len(fields))
	for _, label := range fields {
		sizes[label] = strings.TrimSpace(values[label])
	}
	return sizes
}

// SizeEntries - мерки в порядке шаблона, затем поля вне шаблона по алфавиту
func SizeEntries(garment string, sizes map[string]string) []SizeEntry {
	entries := make([]SizeEntry, 0, len(sizes))
	seen := make(map[string]bool, len(sizes))
	for _, label := range SizeTemplate(garment) {
		if value, ok := sizes[label]; ok {
			entries = append(entries, SizeEntry{Label: label, Value: value})
			seen[label] = true
		}
	}
	var extra []string
	for label := range sizes {
		if !seen[label] {
			extra = append(extra, label)
		}
	}
	slices.Sort(extra)
	for _, label := range extra {
		entries = append(entries, SizeEntry{Label: label, Value: sizes[label]})
	}
	return entries
}

// FormatSizes - строки "мерка: значение", пустое значение выводится как "-"
func FormatSizes(garment string, sizes map[string]string) string {
	entries := SizeEntries(garment, sizes)
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		value := e.Value
		if value == "" {
			value = "-"
		}
		lines = append(lines, e.Label+": "+value)
	}
	return strings.Join(lines, "\n")
}
