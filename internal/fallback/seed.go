package fallback

import (
	"time"

	"github.com/noah-isme/eduverse-api/internal/models"
)

const seeded = models.ProvenanceSeeded

func intPtr(v int) *int { return &v }

func seedUsers() []models.User {
	return []models.User{
		{ID: "u1", Name: "Alex Johnson", Role: models.RoleStudent, Avatar: "https://picsum.photos/200/200?random=1", Level: intPtr(5), XP: intPtr(2450), Email: "alex.j@eduverse.com", Grade: "10th Grade", Provenance: seeded},
		{ID: "u2", Name: "Sarah Johnson", Role: models.RoleParent, Avatar: "https://picsum.photos/200/200?random=2", Email: "sarah.j@gmail.com", Provenance: seeded},
		{ID: "u3", Name: "Mr. Thompson", Role: models.RoleTeacher, Avatar: "https://picsum.photos/200/200?random=3", Email: "thompson@school.edu", Provenance: seeded},
		{ID: "u4", Name: "Mrs. Davis", Role: models.RoleTeacher, Avatar: "https://picsum.photos/200/200?random=4", Email: "davis@school.edu", Provenance: seeded},
	}
}

func seedTasks(now time.Time) []models.Task {
	return []models.Task{
		{
			ID:                   "t1",
			Title:                "Algebra II Quiz Prep",
			Subject:              "Mathematics",
			DueDate:              now.AddDate(0, 0, 1),
			Status:               models.TaskStatusTodo,
			Type:                 models.TaskTypeExamPrep,
			Description:          "Review Chapter 4: Quadratic Equations. Practice problems 1-20.",
			EstimatedTimeMinutes: 60,
			Provenance:           seeded,
		},
		{
			ID:                   "t2",
			Title:                "History Essay: Industrial Revolution",
			Subject:              "History",
			DueDate:              now.AddDate(0, 0, 3),
			Status:               models.TaskStatusInProgress,
			Type:                 models.TaskTypeHomework,
			Description:          "Write a 500-word essay on the impact of steam power.",
			EstimatedTimeMinutes: 120,
			Provenance:           seeded,
		},
		{
			ID:                   "t3",
			Title:                "Science Lab Report",
			Subject:              "Physics",
			DueDate:              now.AddDate(0, 0, -1),
			Status:               models.TaskStatusCompleted,
			Type:                 models.TaskTypeProject,
			Description:          "Submit final report for the pendulum experiment.",
			EstimatedTimeMinutes: 45,
			Provenance:           seeded,
		},
	}
}

func seedTimetable() []models.TimeTableEntry {
	return []models.TimeTableEntry{
		{ID: "tt1", Day: models.Monday, StartTime: "09:00", EndTime: "10:00", Subject: "Mathematics", Room: "101", Teacher: "Mr. Smith", Color: "bg-blue-100 border-blue-300 text-blue-800", Provenance: seeded},
		{ID: "tt2", Day: models.Monday, StartTime: "10:15", EndTime: "11:15", Subject: "Physics", Room: "Lab A", Teacher: "Mrs. Davis", Color: "bg-purple-100 border-purple-300 text-purple-800", Provenance: seeded},
		{ID: "tt3", Day: models.Monday, StartTime: "11:30", EndTime: "12:30", Subject: "History", Room: "204", Teacher: "Mr. Thompson", Color: "bg-amber-100 border-amber-300 text-amber-800", Provenance: seeded},
		{ID: "tt4", Day: models.Tuesday, StartTime: "09:00", EndTime: "10:00", Subject: "English", Room: "105", Teacher: "Ms. Clark", Color: "bg-emerald-100 border-emerald-300 text-emerald-800", Provenance: seeded},
		{ID: "tt5", Day: models.Tuesday, StartTime: "10:15", EndTime: "11:15", Subject: "Chemistry", Room: "Lab B", Teacher: "Mr. White", Color: "bg-rose-100 border-rose-300 text-rose-800", Provenance: seeded},
	}
}

func seedAchievements() []models.Achievement {
	return []models.Achievement{
		{ID: "a1", Title: "Homework Hero", Description: "Complete 10 assignments on time", Icon: "📝", Unlocked: true, Progress: 10, MaxProgress: 10},
		{ID: "a2", Title: "Math Whiz", Description: "Score A on 3 consecutive Math quizzes", Icon: "➗", Unlocked: false, Progress: 1, MaxProgress: 3},
		{ID: "a3", Title: "Early Bird", Description: "Submit 5 assignments before the deadline", Icon: "⏰", Unlocked: true, Progress: 5, MaxProgress: 5},
		{ID: "a4", Title: "Bookworm", Description: "Read assigned literature chapters", Icon: "📚", Unlocked: false, Progress: 40, MaxProgress: 100},
	}
}

func seedHabits() []models.Habit {
	return []models.Habit{
		{ID: "h1", Name: "Read for 30 mins", Streak: 12, CompletedDates: []string{}, Category: models.HabitCategoryStudy, Provenance: seeded},
		{ID: "h2", Name: "Drink 2L Water", Streak: 5, CompletedDates: []string{}, Category: models.HabitCategoryHealth, Provenance: seeded},
		{ID: "h3", Name: "No Social Media", Streak: 3, CompletedDates: []string{}, Category: models.HabitCategoryMindfulness, Provenance: seeded},
		{ID: "h4", Name: "Review Class Notes", Streak: 8, CompletedDates: []string{}, Category: models.HabitCategoryStudy, Provenance: seeded},
	}
}

func seedConversations(now time.Time) []models.Conversation {
	return []models.Conversation{
		{ID: "c1", ParticipantID: "u3", LastMessage: "Don't forget about the project due Friday.", Timestamp: now, UnreadCount: 1, Provenance: seeded},
		{ID: "c2", ParticipantID: "u4", LastMessage: "Great job in class today!", Timestamp: now.Add(-24 * time.Hour), UnreadCount: 0, Provenance: seeded},
	}
}

func seedMessages(now time.Time) map[string][]models.Message {
	return map[string][]models.Message{
		"c1": {
			{ID: "m1", SenderID: "u3", Text: "Hi Alex, just a reminder about the history project.", Timestamp: now.Add(-100 * time.Second), Read: true, Provenance: seeded},
			{ID: "m2", SenderID: "u1", Text: "Yes Mr. Thompson, I am almost done.", Timestamp: now.Add(-50 * time.Second), Read: true, Provenance: seeded},
			{ID: "m3", SenderID: "u3", Text: "Don't forget about the project due Friday.", Timestamp: now, Read: false, Provenance: seeded},
		},
		"c2": {
			{ID: "m4", SenderID: "u4", Text: "Great job in class today!", Timestamp: now.Add(-24 * time.Hour), Read: true, Provenance: seeded},
		},
	}
}

func seedAnnouncements(now time.Time) []models.Announcement {
	return []models.Announcement{
		{ID: "an1", Title: "Science Fair Registration", Content: "Sign up for the annual Science Fair by next Monday. Teams of 2 permitted.", Author: "Principal Skinner", Date: now, Priority: models.AnnouncementPriorityHigh, Tags: []string{"Events", "Science"}, Provenance: seeded},
		{ID: "an2", Title: "Library Renovation", Content: "The school library will be closed for renovations this week. Please use the study hall.", Author: "Admin", Date: now.Add(-48 * time.Hour), Priority: models.AnnouncementPriorityNormal, Tags: []string{"Facility"}, Provenance: seeded},
	}
}
