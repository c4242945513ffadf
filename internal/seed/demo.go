package seed

// Demo returns the built-in sample data: three users, two workspaces,
// three boards, five lists and six cards, with John Doe signed in.
func Demo() *Fixture {
	return &Fixture{
		CurrentUser: "john",
		Users: []UserFixture{
			{Key: "john", Name: "John Doe", Email: "john@example.com",
				Avatar: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=32&h=32&fit=crop&crop=face"},
			{Key: "jane", Name: "Jane Smith", Email: "jane@example.com",
				Avatar: "https://images.unsplash.com/photo-1494790108755-2616b6b1f4d?w=32&h=32&fit=crop&crop=face"},
			{Key: "bob", Name: "Bob Johnson", Email: "bob@example.com",
				Avatar: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=32&h=32&fit=crop&crop=face"},
		},
		Workspaces: []WorkspaceFixture{
			{
				Key:         "company",
				Name:        "Company Workspace",
				Description: "Main company workspace",
				Members:     []string{"john", "jane", "bob"},
				Boards: []BoardFixture{
					{
						Key:         "alpha",
						Title:       "Project Alpha",
						Description: "Main project board",
						Members:     []string{"john", "jane"},
						Lists: []ListFixture{
							{Key: "alpha-todo", Title: "To Do", Cards: []CardFixture{
								{Key: "setup-repo", Title: "Setup project repository",
									Description: "Initialize the project with proper folder structure",
									Assignees:   []string{"john"}},
								{Key: "design-system", Title: "Design system components",
									Description: "Create reusable UI components",
									Assignees:   []string{"jane"}},
							}},
							{Key: "alpha-doing", Title: "In Progress", Cards: []CardFixture{
								{Key: "auth", Title: "Implement authentication",
									Description: "Add user login and registration",
									Assignees:   []string{"john", "jane"}},
							}},
							{Key: "alpha-done", Title: "Done", Cards: []CardFixture{
								{Key: "planning", Title: "Project planning",
									Description: "Define project scope and timeline",
									Assignees:   []string{"john"}},
							}},
						},
					},
					{
						Key:         "marketing",
						Title:       "Marketing Campaign",
						Description: "Q4 Marketing initiatives",
						Members:     []string{"jane", "bob"},
						Lists: []ListFixture{
							{Key: "ideas", Title: "Ideas", Cards: []CardFixture{
								{Key: "social", Title: "Social media strategy",
									Description: "Plan social media content calendar",
									Assignees:   []string{"bob"}},
							}},
						},
					},
				},
			},
			{
				Key:         "personal",
				Name:        "Personal Projects",
				Description: "Personal project workspace",
				Members:     []string{"john"},
				Boards: []BoardFixture{
					{
						Key:         "personal-todo",
						Title:       "Personal Todo",
						Description: "Personal tasks and goals",
						Members:     []string{"john"},
						Lists: []ListFixture{
							{Key: "personal-tasks", Title: "Personal Tasks", Cards: []CardFixture{
								{Key: "react", Title: "Learn React 19",
									Description: "Study new React 19 features",
									Assignees:   []string{"john"}},
							}},
						},
					},
				},
			},
		},
	}
}
