package opengl

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/WaxieDLL/OpenGLPlayground/draw"
)

// LoadProgram compiles and links a vertex and fragment shader pair.
// Compile and link failures carry the driver's info log.
func LoadProgram(vertexSrc, fragmentSrc string) (draw.Program, error) {
	p, err := createShaderProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return 0, err
	}
	return draw.Program(p), nil
}

// LoadProgramFiles reads both shader sources from disk and calls LoadProgram.
func LoadProgramFiles(vertexPath, fragmentPath string) (draw.Program, error) {
	vs, err := os.ReadFile(vertexPath)
	if err != nil {
		return 0, fmt.Errorf("read vertex shader: %w", err)
	}
	fs, err := os.ReadFile(fragmentPath)
	if err != nil {
		return 0, fmt.Errorf("read fragment shader: %w", err)
	}
	p, err := LoadProgram(string(vs), string(fs))
	if err != nil {
		return 0, fmt.Errorf("%s, %s: %w", vertexPath, fragmentPath, err)
	}
	return p, nil
}

// DeleteProgram releases a program created by LoadProgram.
func DeleteProgram(p draw.Program) {
	if p != 0 {
		gl.DeleteProgram(uint32(p))
	}
}

func compileShader(kind uint32, source string) (uint32, error) {
	if !strings.HasSuffix(source, "\x00") {
		source += "\x00"
	}
	shader := gl.CreateShader(kind)
	csource, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetShaderInfoLog(shader, logLength, nil, &log[0])
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile failed: %s", strings.TrimRight(string(log), "\x00\n"))
	}
	return shader, nil
}

// createShaderProgram compiles and links a shader program.
func createShaderProgram(vertexSource, fragmentSource string) (uint32, error) {
	vertexShader, err := compileShader(gl.VERTEX_SHADER, vertexSource)
	if err != nil {
		return 0, fmt.Errorf("vertex shader: %w", err)
	}
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := compileShader(gl.FRAGMENT_SHADER, fragmentSource)
	if err != nil {
		return 0, fmt.Errorf("fragment shader: %w", err)
	}
	defer gl.DeleteShader(fragmentShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetProgramInfoLog(program, logLength, nil, &log[0])
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link failed: %s", strings.TrimRight(string(log), "\x00\n"))
	}

	return program, nil
}
