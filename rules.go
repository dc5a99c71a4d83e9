package main

import "strings"

// Rule binds a predicate to an announcement. Rules are evaluated in table
// order and the first match wins, so the tables double as the priority
// order.
type Rule struct {
	Match   func(Event) bool
	Key     string // stable identifier, also recorded in the event log
	Sound   string // sound-effect key under sounds/<type>/
	Message string // Japanese announcement text
}

func eventNamed(name string) func(Event) bool {
	return func(e Event) bool { return e.Name == name }
}

func toolNamed(name string) func(Event) bool {
	return func(e Event) bool { return e.Tool == name }
}

// commandContains matches a Bash command containing any of the given
// substrings.
func commandContains(subs ...string) func(Event) bool {
	return func(e Event) bool {
		for _, s := range subs {
			if strings.Contains(e.Command, s) {
				return true
			}
		}
		return false
	}
}

// commandContainsAll matches a Bash command containing every one of the
// given substrings.
func commandContainsAll(subs ...string) func(Event) bool {
	return func(e Event) bool {
		for _, s := range subs {
			if !strings.Contains(e.Command, s) {
				return false
			}
		}
		return true
	}
}

// commandHasWord matches a Bash command containing the given word as a
// whitespace-separated token, so "make" does not fire on "cmake ..".
func commandHasWord(word string) func(Event) bool {
	return func(e Event) bool {
		for _, f := range strings.Fields(e.Command) {
			if f == word {
				return true
			}
		}
		return false
	}
}

func anyOf(preds ...func(Event) bool) func(Event) bool {
	return func(e Event) bool {
		for _, p := range preds {
			if p(e) {
				return true
			}
		}
		return false
	}
}

// systemRules match on the exact hook event name.
var systemRules = []Rule{
	{eventNamed("Notification"), "notification", "ready", "クロードが準備完了しました"},
	{eventNamed("Stop"), "stop", "complete", "タスクが完了しました"},
	{eventNamed("SubagentStop"), "subagent_stop", "complete", "サブタスクが完了しました"},
	{eventNamed("UserPromptSubmit"), "prompt_submit", "prompt", "ユーザーがプロンプトを送信しました"},
}

// toolRules match on the tool name of a tool-use event.
var toolRules = []Rule{
	{toolNamed("Edit"), "edit", "edit", "ファイルを編集しています"},
	{toolNamed("MultiEdit"), "multi_edit", "edit", "複数の編集を実行しています"},
	{toolNamed("Write"), "write", "write", "ファイルを作成しています"},
	{toolNamed("NotebookEdit"), "notebook_edit", "edit", "ノートブックを編集しています"},
	{toolNamed("TodoWrite"), "todo", "list", "タスクリストを更新しています"},
	{toolNamed("Read"), "read", "read", "ファイルを読み込んでいます"},
	{toolNamed("Grep"), "grep", "search", "テキストを検索しています"},
	{toolNamed("Glob"), "glob", "search", "ファイルパターンを検索しています"},
	{toolNamed("LS"), "ls", "list", "ディレクトリを一覧表示しています"},
	{toolNamed("Task"), "task", "task", "タスクを実行しています"},
	{toolNamed("exit_plan_mode"), "exit_plan", "complete", "計画モードを終了しています"},
	{toolNamed("WebFetch"), "web_fetch", "web", "ウェブページを取得しています"},
	{toolNamed("WebSearch"), "web_search", "search", "ウェブ検索を実行しています"},
}

// commandRules inspect the command text of Bash invocations. Table order is
// the tie-break: a command containing both "git commit" and "go test"
// announces the commit.
var commandRules = []Rule{
	{commandContains("git commit"), "git_commit", "commit", "Gitコミットを作成しています"},
	{commandContains("git push"), "git_push", "push", "変更をプッシュしています"},
	{commandContains("git pull"), "git_pull", "pull", "変更をプルしています"},
	{commandContains("gh pr"), "gh_pr", "pr", "プルリクエストを作成しています"},
	{anyOf(
		commandContains("npm test", "yarn test", "pytest", "go test", "cargo test"),
		commandContainsAll("python", "test"),
	), "test", "test", "テストを実行しています"},
	{commandHasWord("make"), "build", "build", "ビルドを実行しています"},
	{commandContains("docker"), "docker", "docker", "Dockerコマンドを実行しています"},
	{commandContains("npm"), "npm", "npm", "NPMコマンドを実行しています"},
	{commandContains("python"), "python", "python", "Pythonスクリプトを実行しています"},
}

var bashFallback = Rule{
	Match:   func(Event) bool { return true },
	Key:     "bash",
	Sound:   "bash",
	Message: "コマンドを実行しています",
}

var genericFallback = Rule{
	Match:   func(Event) bool { return true },
	Key:     "generic",
	Sound:   "task",
	Message: "イベントを処理しています",
}

// resolve maps an event to exactly one rule. Priority: exact event name,
// tool name, user overlay command rules, built-in command rules, generic
// Bash message, generic fallback. Resolution is a pure function of the
// event and the rule tables.
func resolve(e Event, overlay []Rule) Rule {
	for _, r := range systemRules {
		if r.Match(e) {
			return r
		}
	}
	if e.isToolEvent() {
		for _, r := range toolRules {
			if r.Match(e) {
				return r
			}
		}
		if e.Tool == "Bash" {
			for _, r := range overlay {
				if r.Match(e) {
					return r
				}
			}
			for _, r := range commandRules {
				if r.Match(e) {
					return r
				}
			}
			return bashFallback
		}
	}
	return genericFallback
}
