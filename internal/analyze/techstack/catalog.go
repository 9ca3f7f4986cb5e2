package techstack

// Detection strategies per rule:
//   Files        - marker file / directory existence
//   Extensions   - file extension presence at the repository root
//   Content      - substring inside a specific file
//   Dependencies - package name in a manifest (npm/pip/docker/go/ruby/rust/php)
//   Dotenv       - env-var name prefix in .env files

// Ecosystem identifies which manifest a dependency reference is matched
// against.
type Ecosystem string

const (
	EcoNPM      Ecosystem = "npm"
	EcoPython   Ecosystem = "python"
	EcoDocker   Ecosystem = "docker"
	EcoGo       Ecosystem = "golang"
	EcoRuby     Ecosystem = "ruby"
	EcoRust     Ecosystem = "rust"
	EcoComposer Ecosystem = "php"
)

type Dependency struct {
	Ecosystem Ecosystem
	Name      string
}

// ContentPattern matches when any of Patterns appears as a substring of File.
type ContentPattern struct {
	File     string
	Patterns []string
}

type Rule struct {
	ID       string
	Name     string
	Category string

	Files        []string
	Extensions   []string
	Content      []ContentPattern
	Dependencies []Dependency
	Dotenv       []string
}

func npm(name string) Dependency      { return Dependency{Ecosystem: EcoNPM, Name: name} }
func pip(name string) Dependency      { return Dependency{Ecosystem: EcoPython, Name: name} }
func docker(name string) Dependency   { return Dependency{Ecosystem: EcoDocker, Name: name} }
func gomod(name string) Dependency    { return Dependency{Ecosystem: EcoGo, Name: name} }
func gem(name string) Dependency      { return Dependency{Ecosystem: EcoRuby, Name: name} }
func cargo(name string) Dependency    { return Dependency{Ecosystem: EcoRust, Name: name} }
func composer(name string) Dependency { return Dependency{Ecosystem: EcoComposer, Name: name} }

// Catalog is the built-in detection rule set.
var Catalog = []Rule{
	// Languages
	{ID: "typescript", Name: "TypeScript", Category: "language", Files: []string{"tsconfig.json"}, Extensions: []string{".ts", ".tsx"}},
	{ID: "javascript", Name: "JavaScript", Category: "language", Extensions: []string{".js", ".jsx", ".mjs", ".cjs"}},
	{ID: "python", Name: "Python", Category: "language", Files: []string{"requirements.txt", "setup.py", "pyproject.toml", "Pipfile"}, Extensions: []string{".py"}},
	{ID: "rust", Name: "Rust", Category: "language", Files: []string{"Cargo.toml"}, Extensions: []string{".rs"}},
	{ID: "go", Name: "Go", Category: "language", Files: []string{"go.mod", "go.sum"}, Extensions: []string{".go"}},
	{ID: "java", Name: "Java", Category: "language", Files: []string{"pom.xml", "build.gradle", "build.gradle.kts"}, Extensions: []string{".java"}},
	{ID: "csharp", Name: "C#", Category: "language", Extensions: []string{".cs", ".csproj", ".sln"}},
	{ID: "ruby", Name: "Ruby", Category: "language", Files: []string{"Gemfile", "Rakefile"}, Extensions: []string{".rb"}},
	{ID: "php", Name: "PHP", Category: "language", Files: []string{"composer.json"}, Extensions: []string{".php"}},
	{ID: "swift", Name: "Swift", Category: "language", Files: []string{"Package.swift"}, Extensions: []string{".swift"}},
	{ID: "kotlin", Name: "Kotlin", Category: "language", Extensions: []string{".kt", ".kts"}},
	{ID: "elixir", Name: "Elixir", Category: "language", Files: []string{"mix.exs"}, Extensions: []string{".ex", ".exs"}},
	{ID: "dart", Name: "Dart", Category: "language", Files: []string{"pubspec.yaml"}, Extensions: []string{".dart"}},
	{ID: "scala", Name: "Scala", Category: "language", Files: []string{"build.sbt"}, Extensions: []string{".scala"}},
	{ID: "cplusplus", Name: "C++", Category: "language", Files: []string{"CMakeLists.txt", "Makefile"}, Extensions: []string{".cpp", ".cxx", ".cc", ".hpp"}},
	{ID: "c", Name: "C", Category: "language", Extensions: []string{".c", ".h"}},
	{ID: "lua", Name: "Lua", Category: "language", Extensions: []string{".lua"}},
	{ID: "haskell", Name: "Haskell", Category: "language", Files: []string{"stack.yaml", "cabal.project"}, Extensions: []string{".hs"}},
	{ID: "bash", Name: "Bash", Category: "language", Extensions: []string{".sh", ".bash"}},
	{ID: "scss", Name: "SCSS", Category: "language", Extensions: []string{".scss", ".sass"}},
	{ID: "css", Name: "CSS", Category: "language", Extensions: []string{".css"}},

	// UI frameworks
	{ID: "react", Name: "React", Category: "ui_framework", Dependencies: []Dependency{npm("react")}},
	{ID: "vue", Name: "Vue", Category: "ui_framework", Extensions: []string{".vue"}, Dependencies: []Dependency{npm("vue")}},
	{ID: "angular", Name: "Angular", Category: "ui_framework", Files: []string{"angular.json"}, Dependencies: []Dependency{npm("@angular/core")}},
	{ID: "svelte", Name: "Svelte", Category: "ui_framework", Extensions: []string{".svelte"}, Dependencies: []Dependency{npm("svelte")}},
	{ID: "solid", Name: "SolidJS", Category: "ui_framework", Dependencies: []Dependency{npm("solid-js")}},
	{ID: "preact", Name: "Preact", Category: "ui_framework", Dependencies: []Dependency{npm("preact")}},
	{ID: "htmx", Name: "htmx", Category: "ui_framework", Dependencies: []Dependency{npm("htmx.org")}},
	{ID: "alpine", Name: "Alpine.js", Category: "ui_framework", Dependencies: []Dependency{npm("alpinejs")}},
	{ID: "lit", Name: "Lit", Category: "ui_framework", Dependencies: []Dependency{npm("lit")}},

	// Frameworks
	{ID: "nextjs", Name: "Next.js", Category: "framework", Files: []string{"next.config.js", "next.config.mjs", "next.config.ts"}, Dependencies: []Dependency{npm("next")}},
	{ID: "nuxt", Name: "Nuxt", Category: "framework", Files: []string{"nuxt.config.js", "nuxt.config.ts"}, Dependencies: []Dependency{npm("nuxt")}},
	{ID: "sveltekit", Name: "SvelteKit", Category: "framework", Dependencies: []Dependency{npm("@sveltejs/kit")}},
	{ID: "remix", Name: "Remix", Category: "framework", Dependencies: []Dependency{npm("@remix-run/node"), npm("@remix-run/react")}},
	{ID: "astro", Name: "Astro", Category: "framework", Files: []string{"astro.config.mjs", "astro.config.ts"}, Dependencies: []Dependency{npm("astro")}},
	{ID: "express", Name: "Express", Category: "framework", Dependencies: []Dependency{npm("express")}},
	{ID: "fastify", Name: "Fastify", Category: "framework", Dependencies: []Dependency{npm("fastify")}},
	{ID: "nestjs", Name: "NestJS", Category: "framework", Dependencies: []Dependency{npm("@nestjs/core")}},
	{ID: "hono", Name: "Hono", Category: "framework", Dependencies: []Dependency{npm("hono")}},
	{ID: "koa", Name: "Koa", Category: "framework", Dependencies: []Dependency{npm("koa")}},
	{ID: "electron", Name: "Electron", Category: "framework", Dependencies: []Dependency{npm("electron")}},
	{ID: "django", Name: "Django", Category: "framework", Files: []string{"manage.py"}, Dependencies: []Dependency{pip("django"), pip("Django")}},
	{ID: "flask", Name: "Flask", Category: "framework", Dependencies: []Dependency{pip("flask"), pip("Flask")}},
	{ID: "fastapi", Name: "FastAPI", Category: "framework", Dependencies: []Dependency{pip("fastapi")}},
	{ID: "rails", Name: "Ruby on Rails", Category: "framework", Files: []string{"config/routes.rb", "bin/rails"}, Dependencies: []Dependency{gem("rails")}},
	{ID: "laravel", Name: "Laravel", Category: "framework", Files: []string{"artisan"}, Dependencies: []Dependency{composer("laravel/framework")}},
	{ID: "symfony", Name: "Symfony", Category: "framework", Dependencies: []Dependency{composer("symfony/framework-bundle")}},
	{ID: "spring", Name: "Spring", Category: "framework", Content: []ContentPattern{
		{File: "pom.xml", Patterns: []string{"spring-boot", "spring-framework"}},
		{File: "build.gradle", Patterns: []string{"spring-boot", "spring-framework"}},
	}},
	{ID: "dotnet", Name: ".NET / ASP.NET", Category: "framework", Files: []string{"appsettings.json", "Startup.cs", "Program.cs"}, Extensions: []string{".csproj"}},
	{ID: "tauri", Name: "Tauri", Category: "framework", Files: []string{"src-tauri"}, Dependencies: []Dependency{npm("@tauri-apps/cli")}},
	{ID: "gin", Name: "Gin", Category: "framework", Dependencies: []Dependency{gomod("github.com/gin-gonic/gin")}},
	{ID: "echo", Name: "Echo", Category: "framework", Dependencies: []Dependency{gomod("github.com/labstack/echo/v4")}},
	{ID: "cobra", Name: "Cobra", Category: "framework", Dependencies: []Dependency{gomod("github.com/spf13/cobra")}},
	{ID: "actix", Name: "Actix Web", Category: "framework", Dependencies: []Dependency{cargo("actix-web")}},
	{ID: "axum", Name: "Axum", Category: "framework", Dependencies: []Dependency{cargo("axum")}},

	// UI libraries
	{ID: "tailwind", Name: "Tailwind CSS", Category: "ui", Files: []string{"tailwind.config.js", "tailwind.config.ts", "tailwind.config.cjs"}, Dependencies: []Dependency{npm("tailwindcss")}},
	{ID: "shadcn", Name: "shadcn/ui", Category: "ui", Files: []string{"components.json"}},
	{ID: "materialui", Name: "Material UI", Category: "ui", Dependencies: []Dependency{npm("@mui/material")}},
	{ID: "chakra", Name: "Chakra UI", Category: "ui", Dependencies: []Dependency{npm("@chakra-ui/react")}},
	{ID: "antd", Name: "Ant Design", Category: "ui", Dependencies: []Dependency{npm("antd")}},
	{ID: "radix", Name: "Radix UI", Category: "ui", Dependencies: []Dependency{npm("@radix-ui/react-dialog"), npm("@radix-ui/themes")}},
	{ID: "bootstrap", Name: "Bootstrap", Category: "ui", Dependencies: []Dependency{npm("bootstrap"), npm("react-bootstrap")}},
	{ID: "storybook", Name: "Storybook", Category: "ui", Files: []string{".storybook"}, Dependencies: []Dependency{npm("storybook"), npm("@storybook/react")}},

	// Static site generators
	{ID: "gatsby", Name: "Gatsby", Category: "ssg", Dependencies: []Dependency{npm("gatsby")}},
	{ID: "hugo", Name: "Hugo", Category: "ssg", Files: []string{"hugo.toml", "hugo.yaml", "config.toml"}},
	{ID: "jekyll", Name: "Jekyll", Category: "ssg", Files: []string{"_config.yml"}, Dependencies: []Dependency{gem("jekyll")}},
	{ID: "docusaurus", Name: "Docusaurus", Category: "ssg", Dependencies: []Dependency{npm("@docusaurus/core")}},
	{ID: "vitepress", Name: "VitePress", Category: "ssg", Dependencies: []Dependency{npm("vitepress")}},
	{ID: "mkdocs", Name: "MkDocs", Category: "ssg", Files: []string{"mkdocs.yml"}, Dependencies: []Dependency{pip("mkdocs")}},

	// Builders / bundlers
	{ID: "vite", Name: "Vite", Category: "builder", Files: []string{"vite.config.js", "vite.config.ts"}, Dependencies: []Dependency{npm("vite")}},
	{ID: "webpack", Name: "Webpack", Category: "builder", Files: []string{"webpack.config.js", "webpack.config.ts"}, Dependencies: []Dependency{npm("webpack")}},
	{ID: "esbuild", Name: "esbuild", Category: "builder", Dependencies: []Dependency{npm("esbuild")}},
	{ID: "rollup", Name: "Rollup", Category: "builder", Files: []string{"rollup.config.js", "rollup.config.ts"}, Dependencies: []Dependency{npm("rollup")}},
	{ID: "babel", Name: "Babel", Category: "builder", Files: []string{"babel.config.js", ".babelrc", "babel.config.json"}, Dependencies: []Dependency{npm("@babel/core")}},
	{ID: "turborepo", Name: "Turborepo", Category: "builder", Files: []string{"turbo.json"}, Dependencies: []Dependency{npm("turbo")}},
	{ID: "nx", Name: "Nx", Category: "builder", Files: []string{"nx.json"}, Dependencies: []Dependency{npm("nx")}},

	// Linters / formatters
	{ID: "eslint", Name: "ESLint", Category: "linter", Files: []string{".eslintrc", ".eslintrc.js", ".eslintrc.json", ".eslintrc.yml", "eslint.config.js", "eslint.config.mjs"}, Dependencies: []Dependency{npm("eslint")}},
	{ID: "prettier", Name: "Prettier", Category: "linter", Files: []string{".prettierrc", ".prettierrc.json", ".prettierrc.js", "prettier.config.js"}, Dependencies: []Dependency{npm("prettier")}},
	{ID: "biome", Name: "Biome", Category: "linter", Files: []string{"biome.json", "biome.jsonc"}, Dependencies: []Dependency{npm("@biomejs/biome")}},
	{ID: "rubocop", Name: "RuboCop", Category: "linter", Files: []string{".rubocop.yml"}, Dependencies: []Dependency{gem("rubocop")}},
	{ID: "golangci-lint", Name: "golangci-lint", Category: "linter", Files: []string{".golangci.yml", ".golangci.yaml"}},

	// Testing
	{ID: "jest", Name: "Jest", Category: "test", Files: []string{"jest.config.js", "jest.config.ts", "jest.config.mjs"}, Dependencies: []Dependency{npm("jest")}},
	{ID: "vitest", Name: "Vitest", Category: "test", Files: []string{"vitest.config.ts", "vitest.config.js"}, Dependencies: []Dependency{npm("vitest")}},
	{ID: "mocha", Name: "Mocha", Category: "test", Dependencies: []Dependency{npm("mocha")}},
	{ID: "cypress", Name: "Cypress", Category: "test", Files: []string{"cypress.config.js", "cypress.config.ts", "cypress"}, Dependencies: []Dependency{npm("cypress")}},
	{ID: "playwright", Name: "Playwright", Category: "test", Files: []string{"playwright.config.ts", "playwright.config.js"}, Dependencies: []Dependency{npm("@playwright/test"), npm("playwright"), pip("playwright")}},
	{ID: "pytest", Name: "pytest", Category: "test", Dependencies: []Dependency{pip("pytest")}},
	{ID: "phpunit", Name: "PHPUnit", Category: "test", Files: []string{"phpunit.xml", "phpunit.xml.dist"}, Dependencies: []Dependency{composer("phpunit/phpunit")}},
	{ID: "testify", Name: "Testify", Category: "test", Dependencies: []Dependency{gomod("github.com/stretchr/testify")}},

	// Validation
	{ID: "zod", Name: "Zod", Category: "validation", Dependencies: []Dependency{npm("zod")}},
	{ID: "joi", Name: "Joi", Category: "validation", Dependencies: []Dependency{npm("joi")}},
	{ID: "yup", Name: "Yup", Category: "validation", Dependencies: []Dependency{npm("yup")}},
	{ID: "ajv", Name: "Ajv", Category: "validation", Dependencies: []Dependency{npm("ajv")}},
	{ID: "pydantic", Name: "Pydantic", Category: "validation", Dependencies: []Dependency{pip("pydantic")}},

	// ORM / data access
	{ID: "prisma", Name: "Prisma", Category: "orm", Files: []string{"schema.prisma", "prisma/schema.prisma"}, Dependencies: []Dependency{npm("prisma"), npm("@prisma/client")}},
	{ID: "drizzle", Name: "Drizzle", Category: "orm", Dependencies: []Dependency{npm("drizzle-orm")}},
	{ID: "typeorm", Name: "TypeORM", Category: "orm", Dependencies: []Dependency{npm("typeorm")}},
	{ID: "sequelize", Name: "Sequelize", Category: "orm", Files: []string{".sequelizerc"}, Dependencies: []Dependency{npm("sequelize")}},
	{ID: "mongoose", Name: "Mongoose", Category: "orm", Dependencies: []Dependency{npm("mongoose")}},
	{ID: "sqlalchemy", Name: "SQLAlchemy", Category: "orm", Dependencies: []Dependency{pip("SQLAlchemy"), pip("sqlalchemy")}},
	{ID: "gorm", Name: "GORM", Category: "orm", Dependencies: []Dependency{gomod("gorm.io/gorm")}},
	{ID: "ent", Name: "Ent", Category: "orm", Dependencies: []Dependency{gomod("entgo.io/ent")}},
	{ID: "diesel", Name: "Diesel", Category: "orm", Files: []string{"diesel.toml"}, Dependencies: []Dependency{cargo("diesel")}},

	// CI / CD
	{ID: "github-actions", Name: "GitHub Actions", Category: "ci", Files: []string{".github/workflows"}},
	{ID: "gitlab-ci", Name: "GitLab CI", Category: "ci", Files: []string{".gitlab-ci.yml"}},
	{ID: "jenkins", Name: "Jenkins", Category: "ci", Files: []string{"Jenkinsfile"}},
	{ID: "circleci", Name: "CircleCI", Category: "ci", Files: []string{".circleci/config.yml", ".circleci"}},
	{ID: "travis", Name: "Travis CI", Category: "ci", Files: []string{".travis.yml"}},
	{ID: "azure-pipelines", Name: "Azure Pipelines", Category: "ci", Files: []string{"azure-pipelines.yml"}},
	{ID: "dependabot", Name: "Dependabot", Category: "ci", Files: []string{".github/dependabot.yml"}},
	{ID: "renovate", Name: "Renovate", Category: "ci", Files: []string{"renovate.json", "renovate.json5", ".renovaterc", ".renovaterc.json"}},
	{ID: "codecov", Name: "Codecov", Category: "ci", Files: []string{"codecov.yml", ".codecov.yml"}},
	{ID: "sonarcloud", Name: "SonarCloud", Category: "ci", Files: []string{"sonar-project.properties"}},

	// Cloud providers
	{ID: "aws", Name: "AWS", Category: "cloud", Files: []string{"serverless.yml", "samconfig.toml", "template.yaml", "cdk.json"}, Dependencies: []Dependency{npm("aws-sdk"), npm("@aws-sdk/client-s3"), pip("boto3")}, Dotenv: []string{"AWS_"}},
	{ID: "gcp", Name: "Google Cloud", Category: "cloud", Dependencies: []Dependency{npm("@google-cloud/storage"), npm("@google-cloud/pubsub"), pip("google-cloud-storage")}, Dotenv: []string{"GOOGLE_CLOUD_", "GCP_", "GCLOUD_"}},
	{ID: "azure", Name: "Azure", Category: "cloud", Dependencies: []Dependency{npm("@azure/storage-blob"), npm("@azure/identity")}, Dotenv: []string{"AZURE_"}},
	{ID: "firebase", Name: "Firebase", Category: "cloud", Files: []string{"firebase.json", ".firebaserc"}, Dependencies: []Dependency{npm("firebase"), npm("firebase-admin")}, Dotenv: []string{"FIREBASE_"}},
	{ID: "cloudflare", Name: "Cloudflare", Category: "cloud", Files: []string{"wrangler.toml", "wrangler.json"}, Dependencies: []Dependency{npm("wrangler"), npm("@cloudflare/workers-types")}},
	{ID: "supabase", Name: "Supabase", Category: "cloud", Files: []string{"supabase"}, Dependencies: []Dependency{npm("@supabase/supabase-js")}, Dotenv: []string{"SUPABASE_", "NEXT_PUBLIC_SUPABASE_"}},
	{ID: "heroku", Name: "Heroku", Category: "cloud", Files: []string{"Procfile", "app.json"}},
	{ID: "flyio", Name: "Fly.io", Category: "cloud", Files: []string{"fly.toml"}},

	// Hosting
	{ID: "vercel", Name: "Vercel", Category: "hosting", Files: []string{"vercel.json", ".vercel"}, Dependencies: []Dependency{npm("@vercel/analytics")}},
	{ID: "netlify", Name: "Netlify", Category: "hosting", Files: []string{"netlify.toml", "_redirects"}},
	{ID: "docker", Name: "Docker", Category: "hosting", Files: []string{"Dockerfile", "docker-compose.yml", "docker-compose.yaml", "compose.yaml", "compose.yml", ".dockerignore"}},
	{ID: "kubernetes", Name: "Kubernetes", Category: "hosting", Files: []string{"k8s", "kubernetes", "skaffold.yaml"}},
	{ID: "render", Name: "Render", Category: "hosting", Files: []string{"render.yaml"}},

	// Infrastructure as code
	{ID: "terraform", Name: "Terraform", Category: "iac", Extensions: []string{".tf"}, Files: []string{"main.tf", "terraform.tfvars"}},
	{ID: "pulumi", Name: "Pulumi", Category: "iac", Files: []string{"Pulumi.yaml", "Pulumi.yml"}, Dependencies: []Dependency{npm("@pulumi/pulumi"), pip("pulumi")}},
	{ID: "ansible", Name: "Ansible", Category: "iac", Files: []string{"ansible.cfg", "playbook.yml"}, Dependencies: []Dependency{pip("ansible")}},
	{ID: "helm", Name: "Helm", Category: "iac", Files: []string{"Chart.yaml"}},
	{ID: "terragrunt", Name: "Terragrunt", Category: "iac", Files: []string{"terragrunt.hcl"}},

	// Databases
	{ID: "postgresql", Name: "PostgreSQL", Category: "db", Dependencies: []Dependency{npm("pg"), npm("postgres"), pip("psycopg2"), pip("psycopg"), docker("postgres"), gomod("github.com/jackc/pgx/v5")}, Dotenv: []string{"POSTGRES_", "PG_", "DATABASE_URL"}},
	{ID: "mysql", Name: "MySQL", Category: "db", Dependencies: []Dependency{npm("mysql"), npm("mysql2"), pip("mysqlclient"), pip("PyMySQL"), docker("mysql")}, Dotenv: []string{"MYSQL_"}},
	{ID: "mongodb", Name: "MongoDB", Category: "db", Dependencies: []Dependency{npm("mongodb"), pip("pymongo"), pip("motor"), docker("mongo")}, Dotenv: []string{"MONGO_", "MONGODB_"}},
	{ID: "redis", Name: "Redis", Category: "db", Dependencies: []Dependency{npm("redis"), npm("ioredis"), pip("redis"), docker("redis"), gomod("github.com/redis/go-redis")}, Dotenv: []string{"REDIS_"}},
	{ID: "sqlite", Name: "SQLite", Category: "db", Extensions: []string{".sqlite", ".db"}, Dependencies: []Dependency{npm("better-sqlite3"), npm("sqlite3"), pip("aiosqlite")}},
	{ID: "elasticsearch", Name: "Elasticsearch", Category: "db", Dependencies: []Dependency{npm("@elastic/elasticsearch"), pip("elasticsearch"), docker("elasticsearch")}, Dotenv: []string{"ELASTIC_", "ELASTICSEARCH_"}},
	{ID: "clickhouse", Name: "ClickHouse", Category: "db", Dependencies: []Dependency{npm("@clickhouse/client"), docker("clickhouse/clickhouse-server"), pip("clickhouse-connect")}},
	{ID: "cockroachdb", Name: "CockroachDB", Category: "db", Dependencies: []Dependency{docker("cockroachdb/cockroach")}},
	{ID: "duckdb", Name: "DuckDB", Category: "db", Dependencies: []Dependency{npm("duckdb"), pip("duckdb")}},
	{ID: "meilisearch", Name: "Meilisearch", Category: "db", Dependencies: []Dependency{npm("meilisearch"), docker("getmeili/meilisearch")}},
	{ID: "pinecone", Name: "Pinecone", Category: "db", Dependencies: []Dependency{npm("@pinecone-database/pinecone"), pip("pinecone-client")}, Dotenv: []string{"PINECONE_"}},
	{ID: "qdrant", Name: "Qdrant", Category: "db", Dependencies: []Dependency{npm("@qdrant/js-client-rest"), pip("qdrant-client")}},

	// Queue / messaging
	{ID: "rabbitmq", Name: "RabbitMQ", Category: "queue", Dependencies: []Dependency{npm("amqplib"), pip("pika"), docker("rabbitmq")}, Dotenv: []string{"RABBITMQ_"}},
	{ID: "kafka", Name: "Apache Kafka", Category: "queue", Dependencies: []Dependency{npm("kafkajs"), pip("kafka-python"), docker("confluentinc/cp-kafka"), gomod("github.com/IBM/sarama")}, Dotenv: []string{"KAFKA_"}},
	{ID: "bullmq", Name: "BullMQ", Category: "queue", Dependencies: []Dependency{npm("bullmq"), npm("bull")}},
	{ID: "nats", Name: "NATS", Category: "queue", Dependencies: []Dependency{npm("nats"), docker("nats")}},
	{ID: "celery", Name: "Celery", Category: "queue", Dependencies: []Dependency{pip("celery")}},

	// Storage
	{ID: "s3", Name: "AWS S3", Category: "storage", Dependencies: []Dependency{npm("@aws-sdk/client-s3"), pip("boto3")}, Dotenv: []string{"S3_", "AWS_S3_"}},
	{ID: "cloudinary", Name: "Cloudinary", Category: "storage", Dependencies: []Dependency{npm("cloudinary")}, Dotenv: []string{"CLOUDINARY_"}},
	{ID: "minio", Name: "MinIO", Category: "storage", Dependencies: []Dependency{npm("minio"), docker("minio/minio"), gomod("github.com/minio/minio-go/v7")}},

	// AI / ML
	{ID: "openai", Name: "OpenAI", Category: "ai", Dependencies: []Dependency{npm("openai"), pip("openai"), gomod("github.com/sashabaranov/go-openai")}, Dotenv: []string{"OPENAI_"}},
	{ID: "anthropic", Name: "Anthropic", Category: "ai", Dependencies: []Dependency{npm("@anthropic-ai/sdk"), pip("anthropic")}, Dotenv: []string{"ANTHROPIC_"}},
	{ID: "google-ai", Name: "Google AI / Gemini", Category: "ai", Dependencies: []Dependency{npm("@google/generative-ai"), pip("google-generativeai")}, Dotenv: []string{"GOOGLE_AI_", "GEMINI_"}},
	{ID: "huggingface", Name: "Hugging Face", Category: "ai", Dependencies: []Dependency{npm("@huggingface/inference"), pip("transformers"), pip("huggingface_hub")}, Dotenv: []string{"HUGGINGFACE_", "HF_"}},
	{ID: "langchain", Name: "LangChain", Category: "ai", Dependencies: []Dependency{npm("langchain"), pip("langchain")}, Dotenv: []string{"LANGCHAIN_"}},
	{ID: "ollama", Name: "Ollama", Category: "ai", Dependencies: []Dependency{npm("ollama"), pip("ollama")}, Dotenv: []string{"OLLAMA_"}},
	{ID: "tensorflow", Name: "TensorFlow", Category: "ai", Dependencies: []Dependency{npm("@tensorflow/tfjs"), pip("tensorflow")}},
	{ID: "pytorch", Name: "PyTorch", Category: "ai", Dependencies: []Dependency{pip("torch"), pip("pytorch")}},

	// Analytics
	{ID: "posthog", Name: "PostHog", Category: "analytics", Dependencies: []Dependency{npm("posthog-js"), npm("posthog-node"), pip("posthog")}, Dotenv: []string{"POSTHOG_", "NEXT_PUBLIC_POSTHOG_"}},
	{ID: "segment", Name: "Segment", Category: "analytics", Dependencies: []Dependency{npm("@segment/analytics-next"), npm("analytics-node")}, Dotenv: []string{"SEGMENT_"}},
	{ID: "mixpanel", Name: "Mixpanel", Category: "analytics", Dependencies: []Dependency{npm("mixpanel"), npm("mixpanel-browser")}, Dotenv: []string{"MIXPANEL_"}},
	{ID: "plausible", Name: "Plausible", Category: "analytics", Dependencies: []Dependency{npm("plausible-tracker")}, Dotenv: []string{"PLAUSIBLE_"}},

	// Monitoring / observability
	{ID: "sentry", Name: "Sentry", Category: "monitoring", Files: []string{".sentryclirc"}, Dependencies: []Dependency{npm("@sentry/node"), npm("@sentry/browser"), npm("@sentry/react"), pip("sentry-sdk"), cargo("sentry"), gem("sentry-ruby")}, Dotenv: []string{"SENTRY_"}},
	{ID: "datadog", Name: "Datadog", Category: "monitoring", Dependencies: []Dependency{npm("dd-trace"), pip("ddtrace")}, Dotenv: []string{"DD_", "DATADOG_"}},
	{ID: "opentelemetry", Name: "OpenTelemetry", Category: "monitoring", Dependencies: []Dependency{npm("@opentelemetry/api"), npm("@opentelemetry/sdk-node"), pip("opentelemetry-api"), gomod("go.opentelemetry.io/otel")}, Dotenv: []string{"OTEL_"}},
	{ID: "prometheus", Name: "Prometheus", Category: "monitoring", Dependencies: []Dependency{npm("prom-client"), docker("prom/prometheus")}},
	{ID: "grafana", Name: "Grafana", Category: "monitoring", Dependencies: []Dependency{docker("grafana/grafana")}, Dotenv: []string{"GRAFANA_"}},

	// Auth
	{ID: "auth0", Name: "Auth0", Category: "auth", Dependencies: []Dependency{npm("@auth0/nextjs-auth0"), npm("auth0"), npm("@auth0/auth0-react")}, Dotenv: []string{"AUTH0_"}},
	{ID: "clerk", Name: "Clerk", Category: "auth", Dependencies: []Dependency{npm("@clerk/nextjs"), npm("@clerk/clerk-react")}, Dotenv: []string{"CLERK_", "NEXT_PUBLIC_CLERK_"}},
	{ID: "nextauth", Name: "NextAuth.js / Auth.js", Category: "auth", Dependencies: []Dependency{npm("next-auth"), npm("@auth/core")}},
	{ID: "keycloak", Name: "Keycloak", Category: "auth", Dependencies: []Dependency{npm("keycloak-js"), docker("keycloak/keycloak")}, Dotenv: []string{"KEYCLOAK_"}},

	// Payment
	{ID: "stripe", Name: "Stripe", Category: "payment", Dependencies: []Dependency{npm("stripe"), npm("@stripe/stripe-js"), pip("stripe"), gem("stripe"), gomod("github.com/stripe/stripe-go")}, Dotenv: []string{"STRIPE_"}},
	{ID: "paypal", Name: "PayPal", Category: "payment", Dependencies: []Dependency{npm("@paypal/checkout-server-sdk"), npm("@paypal/react-paypal-js")}, Dotenv: []string{"PAYPAL_"}},
}
