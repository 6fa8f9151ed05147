// Package jsonl implementa el backend local de persistencia: un archivo de
// registros JSON delimitados por saltos de línea por tipo de entidad
// (users.jsonl, applicants.jsonl), un objeto por línea, append-only salvo la
// reescritura completa que usa la actualización.
//
// El patrón leer-modificar-reescribir NO es seguro entre procesos concurrentes:
// el despliegue asume un único escritor y esa limitación queda documentada aquí.
// Dentro del proceso cada repositorio serializa sus operaciones con un mutex y
// la reescritura pasa por un archivo temporal + os.Rename, de modo que una
// actualización interrumpida nunca deja el archivo a medias.
package jsonl

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	usersFile      = "users.jsonl"
	applicantsFile = "applicants.jsonl"
)

// EnsureDataDir crea el directorio de datos y los archivos vacíos si faltan,
// equivalente al arranque en modo demo/local.
func EnsureDataDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("crear directorio de datos: %w", err)
	}
	for _, name := range []string{usersFile, applicantsFile} {
		f, err := os.OpenFile(filepath.Join(dir, name), os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("crear %s: %w", name, err)
		}
		if err := f.Close(); err != nil {
			return err
		}
	}
	return nil
}

// appendLine serializa v como JSON y lo agrega como una línea al final del archivo.
func appendLine(path string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("serializar registro: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("abrir %s: %w", path, err)
	}
	if _, err := f.Write(append(data, '\n')); err != nil {
		f.Close()
		return fmt.Errorf("escribir %s: %w", path, err)
	}
	return f.Close()
}

// readAll decodifica cada línea no vacía del archivo. Un archivo inexistente
// equivale a cero registros.
func readAll[T any](path string) ([]*T, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("abrir %s: %w", path, err)
	}
	defer f.Close()

	var out []*T
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		rec := new(T)
		if err := json.Unmarshal(line, rec); err != nil {
			return nil, fmt.Errorf("decodificar línea de %s: %w", path, err)
		}
		out = append(out, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("leer %s: %w", path, err)
	}
	return out, nil
}

// rewriteAll reescribe el archivo completo con los registros dados, vía archivo
// temporal en el mismo directorio + rename atómico.
func rewriteAll[T any](path string, records []*T) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".rewrite-*")
	if err != nil {
		return fmt.Errorf("crear temporal para %s: %w", path, err)
	}
	defer os.Remove(tmp.Name()) // inocuo tras el rename

	w := bufio.NewWriter(tmp)
	enc := json.NewEncoder(w) // Encode agrega el '\n' por registro
	for _, rec := range records {
		if err := enc.Encode(rec); err != nil {
			tmp.Close()
			return fmt.Errorf("serializar registro: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("reemplazar %s: %w", path, err)
	}
	return nil
}
