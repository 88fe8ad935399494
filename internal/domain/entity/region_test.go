package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRegion(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"special city suffix", "서울특별시", "서울"},
		{"metropolitan city suffix", "부산광역시", "부산"},
		{"province suffix", "경기도", "경기"},
		{"special self-governing city", "세종특별자치시", "세종"},
		{"special self-governing province", "제주특별자치도", "제주"},
		{"romanized si suffix", "Seoul-si", "Seoul"},
		{"romanized do suffix", "Gangwon-do", "Gangwon"},
		{"already canonical", "서울", "서울"},
		{"canonical latin", "Seoul", "Seoul"},
		{"surrounding whitespace", "  대구광역시 ", "대구"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeRegion(tt.input))
		})
	}
}

func TestComposeAddress(t *testing.T) {
	assert.Equal(t, "테헤란로 123", ComposeAddress("테헤란로 123", "", ""))
	assert.Equal(t, "테헤란로 123 4층", ComposeAddress("테헤란로 123", "4층", ""))
	assert.Equal(t, "테헤란로 123 4층 (역삼동)", ComposeAddress("테헤란로 123", "4층", "역삼동"))
	assert.Equal(t, "테헤란로 123 (역삼동)", ComposeAddress("테헤란로 123 ", "", " 역삼동 "))
}
