package client

import "github.com/sportsclub/admincore/internal/domain"

// Canned fixture data for mock mode. Fixture shapes mirror the backend JSON
// responses field-for-field; the contract test in this package checks both
// implementations against the same shapes. Builders return fresh values so
// callers can't mutate the fixtures for each other.

// MockToken is the bearer token issued by the mock login.
const MockToken = "mock_token_12345"

func fixturePlayerList() *domain.PlayerList {
	return &domain.PlayerList{
		Total: 10,
		Players: []domain.Player{
			{ID: 1, FirstName: "Lucas", LastName: "Pavlenda", JerseyNumber: 5, Position: "striker", Team: &domain.TeamRef{Name: "U9"}},
			{ID: 2, FirstName: "L.", LastName: "Pavlenová", JerseyNumber: 15, Position: "midfielder", Team: &domain.TeamRef{Name: "U9"}},
			{ID: 3, FirstName: "P.", LastName: "Bielik", JerseyNumber: 45, Position: "defender", Team: &domain.TeamRef{Name: "U9"}},
		},
	}
}

func fixturePlayer(id int64) *domain.Player {
	return &domain.Player{ID: id, FirstName: "Lucas", LastName: "Pavlenda", JerseyNumber: 5, Position: "striker"}
}

func fixtureTeamList() *domain.TeamList {
	return &domain.TeamList{
		Total: 5,
		Teams: []domain.Team{
			{ID: 1, Name: "U7", AgeGroup: "U7", PlayerCount: 12},
			{ID: 2, Name: "U9", AgeGroup: "U9", PlayerCount: 10},
			{ID: 3, Name: "U11", AgeGroup: "U11", PlayerCount: 15},
		},
	}
}

func fixtureTrainingList() *domain.TrainingList {
	return &domain.TrainingList{
		Total: 6,
		Trainings: []domain.Training{
			{ID: 1, Name: "Tréning #52", Date: "2024-05-02", Location: "Hlavní hřiště", Status: "completed", ExerciseCount: 5},
			{ID: 2, Name: "Tréning #51", Date: "2024-04-30", Location: "Hlavní hřiště", Status: "completed", ExerciseCount: 4},
		},
	}
}

func fixtureMatchList() *domain.MatchList {
	return &domain.MatchList{
		Total: 5,
		Matches: []domain.Match{
			{ID: 1, Opponent: "Banská Bystrica", MatchDate: "2024-05-04", Result: "2:1", Status: "completed"},
			{ID: 2, Opponent: "Žilina", MatchDate: "2024-05-11", Result: "2:2", Status: "completed"},
		},
	}
}

func fixtureTestResultList() *domain.TestResultList {
	return &domain.TestResultList{
		Total: 5,
		Results: []domain.TestResult{
			{ID: 1, Player: domain.NameRef{Name: "Lucas Pavlenda"}, Test: domain.NameRef{Name: "10m"}, Value: "2.5", Unit: "s", TestDate: "2024-05-01"},
		},
	}
}

func fixtureDashboardStats() *domain.DashboardStats {
	return &domain.DashboardStats{
		TotalPlayers:      47,
		TotalTeams:        5,
		UpcomingTrainings: 3,
		UpcomingMatches:   2,
		RecentTests:       12,
	}
}

func fixtureClubList() *domain.ClubList {
	return &domain.ClubList{
		Total: 2,
		Clubs: []domain.Club{
			{ID: 1, Name: "ŠK Slovan Bratislava", City: "Bratislava", Country: "SK"},
			{ID: 2, Name: "MŠK Žilina", City: "Žilina", Country: "SK"},
		},
	}
}

func fixtureInvite(code string) *domain.InviteResponse {
	return &domain.InviteResponse{
		Invite: domain.Invite{
			ID:          1,
			InviteCode:  code,
			InviteType:  "coach",
			Email:       "novy.trener@sportsclub.sk",
			ClubID:      1,
			ClubName:    "ŠK Slovan Bratislava",
			InviterName: "Admin User",
			ExpiresAt:   "2027-01-31T23:59:59Z",
			Status:      "pending",
		},
	}
}

func fixturePendingUserList() *domain.PendingUserList {
	return &domain.PendingUserList{
		Users: []domain.PendingUser{
			{ID: 21, Email: "klub@fkmartin.sk", FirstName: "Marek", LastName: "Kováč", Role: "club", CreatedAt: "2024-05-01T09:30:00Z"},
			{ID: 22, Email: "hrac@fkmartin.sk", FirstName: "Tomáš", LastName: "Urban", Role: "player", CreatedAt: "2024-05-02T14:05:00Z"},
		},
	}
}
