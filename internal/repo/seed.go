// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file loads sample coffee-chat listings for local
// development and demos.
package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tripchat/tripchat-backend/internal/domain"
)

// sampleCoffeeChats are the demo listings shown on a fresh install.
var sampleCoffeeChats = []domain.CoffeeChat{
	{
		Title:               "도쿄 IT 업계 취업 성공기",
		Host:                "김민수",
		Country:             "일본",
		City:                "도쿄",
		Job:                 "프론트엔드 개발자",
		Company:             "LINE",
		Experience:          "3년차",
		Date:                "2024-01-15",
		Time:                "19:00",
		MaxParticipants:     8,
		CurrentParticipants: 3,
		Description:         "일본 IT 업계에서 취업하기까지의 과정과 현재 생활에 대해 이야기해요. 일본어 공부법부터 이력서 작성 팁까지!",
		Tags:                []string{"일본", "IT", "취업", "일본어"},
		Status:              domain.ChatStatusOpen,
	},
	{
		Title:               "런던 금융권 취업 후기",
		Host:                "박지영",
		Country:             "영국",
		City:                "런던",
		Job:                 "데이터 분석가",
		Company:             "Goldman Sachs",
		Experience:          "2년차",
		Date:                "2024-01-20",
		Time:                "20:00",
		MaxParticipants:     6,
		CurrentParticipants: 6,
		Description:         "영국 금융권에서 일하는 것에 대해 궁금한 점들을 자유롭게 물어보세요. 비자 신청부터 일상생활까지!",
		Tags:                []string{"영국", "금융", "런던", "비자"},
		Status:              domain.ChatStatusFull,
	},
	{
		Title:               "베를린 스타트업 생태계",
		Host:                "이준호",
		Country:             "독일",
		City:                "베를린",
		Job:                 "프로덕트 매니저",
		Company:             "N26",
		Experience:          "4년차",
		Date:                "2024-01-25",
		Time:                "18:30",
		MaxParticipants:     10,
		CurrentParticipants: 7,
		Description:         "독일 스타트업에서 일하는 것의 장단점과 베를린의 멋진 문화에 대해 이야기해요.",
		Tags:                []string{"독일", "스타트업", "베를린", "PM"},
		Status:              domain.ChatStatusOpen,
	},
}

// SeedCoffeeChats inserts the sample listings when the coffee-chat table is
// empty. It is a no-op on a populated database, so it is safe to run at
// every startup.
func SeedCoffeeChats(ctx context.Context, db *gorm.DB) (int, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&domain.CoffeeChat{}).Count(&count).Error; err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	inserted := 0
	for _, c := range sampleCoffeeChats {
		c.ID = uuid.NewString()
		if err := db.WithContext(ctx).Create(&c).Error; err != nil {
			return inserted, err
		}
		inserted++
	}
	return inserted, nil
}
