package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"weyouth/internal/models"
)

var (
	studentNames = []string{"김민준", "이서연", "박도윤", "최지우", "정하준", "강서아", "조은우", "윤지민", "임수호", "한예은",
		"오시우", "서다은", "신준서", "권하린", "황지호", "안유나", "송건우", "전소율", "홍태양", "문채원"}
	teacherNames = []string{"김은혜", "박믿음", "이소망", "최사랑"}
	talkTitles   = []string{"이번 주 수련회 너무 기대돼요!", "점심 같이 먹을 사람?", "찬양팀 연습 후기", "새 친구 환영해요"}
	prayerTitles = []string{"기말고사 잘 볼 수 있게 기도해주세요", "가족의 건강을 위해", "진로 고민 중입니다", "친구 관계를 위해"}
)

func main() {
	db, err := gorm.Open(sqlite.Open("weyouth.db"), &gorm.Config{})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("📋 명단을 채웁니다...")
	var members []models.Member
	for i, name := range studentNames {
		grade := 10 + i%3
		members = append(members, models.Member{Name: name, Role: "student", Grade: &grade})
	}
	for _, name := range teacherNames {
		members = append(members, models.Member{Name: name, Role: "teacher"})
	}
	created := 0
	for i := range members {
		var existing models.Member
		db.Where("name = ?", members[i].Name).First(&existing)
		if existing.ID == 0 {
			db.Create(&members[i])
			created++
		}
	}
	fmt.Printf("  ✅ 등록된 인원: %d명\n", created)

	fmt.Println("\n📢 공지사항을 만듭니다...")
	notices := []models.Notice{
		{Title: "여름 수련회 신청 안내", Content: "7월 말 여름 수련회 신청을 받습니다. 아래 신청 버튼을 눌러주세요!", Date: time.Now().Format("2006-01-02"), Author: teacherNames[0], Category: "event"},
		{Title: "이번 주 예배 안내", Content: "이번 주일 예배는 평소와 같이 10시 30분에 드립니다.", Date: time.Now().Format("2006-01-02"), Author: teacherNames[1], Category: "worship"},
		{Title: "간식 봉사자 모집", Content: "주일 간식 준비를 도와줄 친구들을 찾습니다.", Date: time.Now().Format("2006-01-02"), Author: teacherNames[0], Category: "info"},
	}
	for i := range notices {
		db.Create(&notices[i])
	}
	fmt.Printf("  ✅ 공지 %d건\n", len(notices))

	fmt.Println("\n💬 소통 공간 글을 만듭니다...")
	postCount := 0
	for i, title := range talkTitles {
		author := studentNames[rand.Intn(len(studentNames))]
		post := models.Post{
			AuthorID:   fmt.Sprintf("s_seed%d", i),
			AuthorName: author,
			Title:      title,
			Content:    title,
			Category:   "talk",
			Likes:      rand.Intn(10),
		}
		db.Create(&post)
		postCount++
	}
	for i, title := range prayerTitles {
		author := studentNames[rand.Intn(len(studentNames))]
		post := models.Post{
			AuthorID:   fmt.Sprintf("s_seedp%d", i),
			AuthorName: author,
			Title:      title,
			Content:    title,
			Category:   "prayer",
			Likes:      rand.Intn(5),
		}
		db.Create(&post)
		postCount++
	}
	fmt.Printf("  ✅ 게시글 %d건\n", postCount)

	fmt.Println("\n🙋 출석 기록을 만듭니다...")
	today := time.Now().Format("2006-01-02")
	attendanceCount := 0
	for i, name := range studentNames {
		if i%3 == 2 {
			continue // 일부는 결석 처리
		}
		status := "present"
		if i%4 == 1 {
			status = "late"
		}
		db.Create(&models.AttendanceRecord{
			UserID:   fmt.Sprintf("s_seed%d", i),
			UserName: name,
			Date:     today,
			Status:   status,
		})
		attendanceCount++
	}
	fmt.Printf("  ✅ 출석 기록 %d건\n", attendanceCount)

	fmt.Println("\n🎉 완료! 데모 데이터가 준비되었습니다.")
	fmt.Println("🔐 공용 비밀번호: 12345678")
}
