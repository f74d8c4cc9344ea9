/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package mapper

import (
	"dirpx.dev/pgstate/sqlstate"
	"google.golang.org/grpc/codes"
)

// freezeHTTPDefaults makes an immutable copy of the HTTP defaults map.
// Used when finalizing the mapper so later mutations to the builder
// (or caller-owned maps) cannot affect the mapper.
func freezeHTTPDefaults(src map[sqlstate.Class]int) map[sqlstate.Class]int {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[sqlstate.Class]int, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// freezeGRPCDefaults makes an immutable copy of the gRPC defaults map,
// converting builder-style int values into typed gRPC codes.
func freezeGRPCDefaults(src map[sqlstate.Class]int) map[sqlstate.Class]codes.Code {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[sqlstate.Class]codes.Code, len(src))
	for k, v := range src {
		dst[k] = codes.Code(v)
	}
	return dst
}

// freezeHTTPOverrides makes an immutable copy of the HTTP overrides map.
func freezeHTTPOverrides(src map[sqlstate.Code]int) map[sqlstate.Code]int {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[sqlstate.Code]int, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// freezeGRPCOverrides makes an immutable copy of the gRPC overrides map,
// converting ints into typed gRPC codes.
func freezeGRPCOverrides(src map[sqlstate.Code]int) map[sqlstate.Code]codes.Code {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[sqlstate.Code]codes.Code, len(src))
	for k, v := range src {
		dst[k] = codes.Code(v)
	}
	return dst
}
