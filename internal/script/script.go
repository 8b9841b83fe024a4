// Package script runs the optional Lua hook applied to confirmed text.
//
// A script sees the confirmed text as ctx.text and the dialog title as
// ctx.title. Assigning the global result replaces the text; leaving it nil
// keeps the text unchanged. The textbox module exposes a few helpers:
//
//	textbox.copy(text)        -> ok, err
//	textbox.exec(cmd, ...)    -> output, err
//	textbox.env(name)         -> value
//	textbox.sleep(ms)
//	textbox.log(message)
package script

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	lua "github.com/yuin/gopher-lua"

	"textbox/internal/logger"
)

// Engine runs scripts stored in a single directory.
type Engine struct {
	dir string

	// Copy backs textbox.copy.
	Copy func(text string) error
}

// NewEngine returns an engine reading scripts from dir, creating it if needed.
func NewEngine(dir string) (*Engine, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create scripts directory: %w", err)
	}
	return &Engine{dir: dir}, nil
}

// Dir returns the scripts directory.
func (e *Engine) Dir() string {
	return e.dir
}

// Path resolves a script name against the scripts directory. Absolute
// paths are used as given.
func (e *Engine) Path(scriptName string) string {
	if filepath.IsAbs(scriptName) {
		return scriptName
	}
	return filepath.Join(e.dir, scriptName)
}

// Run executes scriptName with context variables. The returned bool reports
// whether the script assigned result.
func (e *Engine) Run(scriptName string, context map[string]string) (string, bool, error) {
	scriptPath := e.Path(scriptName)

	if _, err := os.Stat(scriptPath); os.IsNotExist(err) {
		return "", false, fmt.Errorf("script not found: %s", scriptPath)
	}

	// Fresh state per run
	L := lua.NewState()
	defer L.Close()

	e.registerModule(L)

	ctx := L.NewTable()
	for k, v := range context {
		L.SetField(ctx, k, lua.LString(v))
	}
	L.SetGlobal("ctx", ctx)
	L.SetGlobal("result", lua.LNil)

	if err := L.DoFile(scriptPath); err != nil {
		return "", false, fmt.Errorf("script error: %w", err)
	}

	result := L.GetGlobal("result")
	if result == lua.LNil {
		return "", false, nil
	}
	return result.String(), true, nil
}

// Transform runs the script on text and returns the replacement, or text
// itself when the script leaves result unset.
func (e *Engine) Transform(scriptName, title, text string) (string, error) {
	out, ok, err := e.Run(scriptName, map[string]string{
		"title": title,
		"text":  text,
	})
	logger.LogScriptExecuted(scriptName, err)
	if err != nil {
		return text, err
	}
	if !ok {
		return text, nil
	}
	return out, nil
}

func (e *Engine) registerModule(L *lua.LState) {
	mod := L.NewTable()

	L.SetField(mod, "copy", L.NewFunction(e.luaCopy))
	L.SetField(mod, "exec", L.NewFunction(luaExec))
	L.SetField(mod, "env", L.NewFunction(luaEnv))
	L.SetField(mod, "sleep", L.NewFunction(luaSleep))
	L.SetField(mod, "log", L.NewFunction(luaLog))

	L.SetGlobal("textbox", mod)
}

// luaCopy copies text to clipboard: textbox.copy(text)
func (e *Engine) luaCopy(L *lua.LState) int {
	text := L.CheckString(1)
	if e.Copy == nil {
		L.Push(lua.LFalse)
		L.Push(lua.LString("clipboard not available"))
		return 2
	}
	if err := e.Copy(text); err != nil {
		L.Push(lua.LFalse)
		L.Push(lua.LString(err.Error()))
		return 2
	}
	L.Push(lua.LTrue)
	return 1
}

// luaExec executes a command and returns output: textbox.exec(cmd, args...) -> output, error
func luaExec(L *lua.LState) int {
	cmdName := L.CheckString(1)
	var args []string
	for i := 2; i <= L.GetTop(); i++ {
		args = append(args, L.CheckString(i))
	}

	output, err := exec.Command(cmdName, args...).CombinedOutput()
	if err != nil {
		L.Push(lua.LString(string(output)))
		L.Push(lua.LString(err.Error()))
		return 2
	}
	L.Push(lua.LString(string(output)))
	return 1
}

// luaEnv gets an environment variable: textbox.env(name) -> value
func luaEnv(L *lua.LState) int {
	L.Push(lua.LString(os.Getenv(L.CheckString(1))))
	return 1
}

// luaSleep pauses execution: textbox.sleep(milliseconds)
func luaSleep(L *lua.LState) int {
	ms := L.CheckInt(1)
	time.Sleep(time.Duration(ms) * time.Millisecond)
	return 0
}

// luaLog writes to the debug log: textbox.log(message)
func luaLog(L *lua.LState) int {
	logger.LogDebug("[Lua] %s", L.CheckString(1))
	return 0
}
