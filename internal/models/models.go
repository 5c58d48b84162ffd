package models

import (
	"time"

	"gorm.io/gorm"
)

// Member 관리자가 등록한 명단 항목 (로그인 시 이름 대조, 신분 자동 부여).
// 이름이 로그인 키이므로 삭제는 하드 삭제다: 지운 이름은 바로 다시 등록할 수 있어야 한다.
type Member struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"unique;not null;size:50" json:"name"`
	Role      string    `gorm:"not null;size:20" json:"role"` // student, teacher, admin, leader, president
	Grade     *int      `json:"grade,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Notice 공지사항
type Notice struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Title     string         `gorm:"not null;size:255" json:"title"`
	Content   string         `gorm:"not null;type:text" json:"content"`
	Date      string         `gorm:"not null;size:10" json:"date"` // YYYY-MM-DD
	Author    string         `gorm:"not null;size:50" json:"author"`
	Category  string         `gorm:"not null;size:20" json:"category"` // worship, event, info
	ImageURL  string         `gorm:"size:500" json:"image_url,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Participation 공지(행사)에 대한 참여 신청
type Participation struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	NoticeID    uint      `gorm:"not null;index" json:"notice_id"`
	NoticeTitle string    `gorm:"not null;size:255" json:"notice_title"` // 신청 시점의 제목 스냅샷
	UserID      string    `gorm:"not null;size:50" json:"user_id"`
	UserName    string    `gorm:"not null;size:50;index" json:"user_name"`
	UserRole    string    `gorm:"not null;size:20" json:"user_role"`
	AppliedAt   time.Time `gorm:"not null" json:"applied_at"`
	IsRead      bool      `gorm:"not null;default:false" json:"is_read"`

	// 연관
	Notice Notice `gorm:"foreignKey:NoticeID" json:"-"`
}

// Post 소통 공간 게시글 (자유수다 / 기도제목)
type Post struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	Title      string         `gorm:"not null;size:255" json:"title"`
	Content    string         `gorm:"not null;type:text" json:"content"`
	AuthorID   string         `gorm:"not null;size:50" json:"author_id"`
	AuthorName string         `gorm:"not null;size:50" json:"author_name"`
	Category   string         `gorm:"not null;size:20" json:"category"` // talk, prayer
	Likes      int            `gorm:"not null;default:0" json:"likes"`
	CreatedAt  time.Time      `json:"created_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	// 연관
	Comments []Comment `gorm:"foreignKey:PostID" json:"comments"`
}

// Comment 게시글 댓글 (수정/재정렬 없음, 추가만 가능)
type Comment struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	PostID     uint      `gorm:"not null;index" json:"post_id"`
	AuthorName string    `gorm:"not null;size:50" json:"author_name"`
	Content    string    `gorm:"not null;type:text" json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}

// AttendanceRecord 주일 출석 기록 (이름+날짜당 1건)
type AttendanceRecord struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"not null;size:50" json:"user_id"`
	UserName  string    `gorm:"not null;size:50;index" json:"user_name"`
	Date      string    `gorm:"not null;size:10;index" json:"date"` // YYYY-MM-DD
	Status    string    `gorm:"not null;size:20" json:"status"`     // present, late, absent
	CreatedAt time.Time `json:"created_at"`
}

// Notification 알림 센터 항목
type Notification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Type      string    `gorm:"not null;size:20" json:"type"` // notice, community
	Title     string    `gorm:"not null;size:255" json:"title"`
	Message   string    `gorm:"not null;type:text" json:"message"`
	Link      string    `gorm:"not null;size:255" json:"link"`
	IsRead    bool      `gorm:"not null;default:false" json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// ScheduleEntry 주간 일정
type ScheduleEntry struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Day       string         `gorm:"not null;size:10" json:"day"` // 월, 화, ..., 주일
	Title     string         `gorm:"not null;size:255" json:"title"`
	Time      string         `gorm:"not null;size:10" json:"time"` // HH:MM
	Type      string         `gorm:"not null;size:20" json:"type"` // practice, meeting, worship
	IsMain    bool           `gorm:"not null;default:false" json:"is_main"`
	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Settings 예배 정보 (단일 행)
type Settings struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	WorshipTime     string    `gorm:"not null;size:10" json:"worship_time"`
	WorshipLocation string    `gorm:"not null;size:255" json:"worship_location"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// DailyVerse 오늘의 말씀 (묵상 페이지에서 무작위 선택)
type DailyVerse struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Text      string `gorm:"not null;type:text" json:"text"`
	Reference string `gorm:"not null;size:100" json:"reference"`
}
