package hr

// Seed fixtures used when a collection key is absent from the store.

var SeedEmployees = []Employee{
	{ID: "emp-1", Name: "Alice Johnson", Position: "Senior Frontend Engineer", Department: DeptEngineering, Email: "alice.j@example.com", Phone: "123-456-7890", StartDate: "2021-03-15", Avatar: "https://picsum.photos/id/1027/200/200", Status: StatusActive},
	{ID: "emp-2", Name: "Bob Williams", Position: "Product Manager", Department: DeptDesign, Email: "bob.w@example.com", Phone: "123-456-7891", StartDate: "2020-07-20", Avatar: "https://picsum.photos/id/1005/200/200", Status: StatusActive},
	{ID: "emp-3", Name: "Charlie Brown", Position: "UX/UI Designer", Department: DeptDesign, Email: "charlie.b@example.com", Phone: "123-456-7892", StartDate: "2022-01-10", Avatar: "https://picsum.photos/id/1011/200/200", Status: StatusActive},
	{ID: "emp-4", Name: "Diana Prince", Position: "Marketing Lead", Department: DeptMarketing, Email: "diana.p@example.com", Phone: "123-456-7893", StartDate: "2019-11-01", Avatar: "https://picsum.photos/id/1012/200/200", Status: StatusActive},
	{ID: "emp-5", Name: "Ethan Hunt", Position: "Sales Executive", Department: DeptSales, Email: "ethan.h@example.com", Phone: "123-456-7894", StartDate: "2023-05-22", Avatar: "https://picsum.photos/id/1025/200/200", Status: StatusActive},
	{ID: "emp-6", Name: "Fiona Glenanne", Position: "HR Specialist", Department: DeptHR, Email: "fiona.g@example.com", Phone: "123-456-7895", StartDate: "2022-08-18", Avatar: "https://picsum.photos/id/1026/200/200", Status: StatusOnLeave},
	{ID: "emp-7", Name: "George Costanza", Position: "Backend Engineer", Department: DeptEngineering, Email: "george.c@example.com", Phone: "123-456-7896", StartDate: "2021-09-01", Avatar: "https://picsum.photos/id/103/200/200", Status: StatusActive},
	{ID: "emp-8", Name: "Hannah Montana", Position: "Social Media Manager", Department: DeptMarketing, Email: "hannah.m@example.com", Phone: "123-456-7897", StartDate: "2023-02-14", Avatar: "https://picsum.photos/id/1047/200/200", Status: StatusActive},
}

var SeedCandidates = []Candidate{
	{ID: "can-1", Name: "Ivy Green", Position: "Senior Frontend Engineer", Stage: StageInterview, AppliedDate: "2024-06-10", Avatar: "https://picsum.photos/id/201/200/200"},
	{ID: "can-2", Name: "Jack Black", Position: "UX/UI Designer", Stage: StageApplied, AppliedDate: "2024-06-25", Avatar: "https://picsum.photos/id/202/200/200"},
	{ID: "can-3", Name: "Karen Page", Position: "Product Manager", Stage: StageScreening, AppliedDate: "2024-06-22", Avatar: "https://picsum.photos/id/203/200/200"},
	{ID: "can-4", Name: "Leo Fitz", Position: "Senior Frontend Engineer", Stage: StageOffer, AppliedDate: "2024-06-05", Avatar: "https://picsum.photos/id/204/200/200"},
	{ID: "can-5", Name: "Mona Lisa", Position: "Backend Engineer", Stage: StageHired, AppliedDate: "2024-05-20", Avatar: "https://picsum.photos/id/206/200/200"},
	{ID: "can-6", Name: "Nick Fury", Position: "Sales Executive", Stage: StageApplied, AppliedDate: "2024-06-28", Avatar: "https://picsum.photos/id/208/200/200"},
	{ID: "can-7", Name: "Olivia Pope", Position: "Marketing Lead", Stage: StageInterview, AppliedDate: "2024-06-15", Avatar: "https://picsum.photos/id/209/200/200"},
}

var SeedCourses = []Course{
	{ID: "crs-1", Title: "Go for Backend Engineers", Description: "Build and ship production services in Go.", Duration: 240, Category: CategoryTechnical, Thumbnail: "https://picsum.photos/seed/GoForBackend/400/225", EnrolledCount: 18, TotalCapacity: 30},
	{ID: "crs-2", Title: "Giving Effective Feedback", Description: "Practical frameworks for peer and report feedback.", Duration: 90, Category: CategorySoftSkills, Thumbnail: "https://picsum.photos/seed/Feedback/400/225", EnrolledCount: 24, TotalCapacity: 40},
	{ID: "crs-3", Title: "Workplace Safety Essentials", Description: "Annual compliance training for all staff.", Duration: 60, Category: CategoryCompliance, Thumbnail: "https://picsum.photos/seed/Safety/400/225", EnrolledCount: 55, TotalCapacity: 100},
	{ID: "crs-4", Title: "First-Time Manager Bootcamp", Description: "Transitioning from individual contributor to lead.", Duration: 180, Category: CategoryLeadership, Thumbnail: "https://picsum.photos/seed/Manager/400/225", EnrolledCount: 9, TotalCapacity: 15},
}
