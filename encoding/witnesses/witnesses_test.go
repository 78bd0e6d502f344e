/*
 * declcheck - Declaration checking for a language with generics and interfaces
 *
 * Copyright Flow Foundation
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package witnesses_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onflow/declcheck/encoding/witnesses"
	"github.com/onflow/declcheck/sema"
	. "github.com/onflow/declcheck/test_utils/common_utils"
	. "github.com/onflow/declcheck/test_utils/sema_utils"
)

const program = `
  interface IBase {
      int base();
  }

  interface ISized : IBase {
      associatedtype Element;
      static const int Size;
      Element get(int index);
  }

  struct Box : ISized {
      typedef float Element;
      static const int Size = 4;
      int base() { return Size; }
      float get(int index, int offset = 0) { return 1.5; }
  }
`

func TestExport(t *testing.T) {

	t.Parallel()

	checker, err := ParseAndCheck(t, program)
	require.NoError(t, err)

	document := witnesses.Export(checker)

	require.Equal(t, TestLocation.String(), document.Location)
	require.Len(t, document.Tables, 1)

	table := document.Tables[0]
	assert.Equal(t, "Box", table.Type)
	assert.Equal(t, "ISized", table.Interface)
	assert.False(t, table.Failed)
	assert.NotZero(t, table.Inheritance)

	var names []string
	for _, witness := range table.Witnesses {
		names = append(names, witness.RequirementName)
	}
	// associated types first, then the other requirements in declaration order
	assert.Equal(t, []string{"Element", "", "Size", "get"}, names)

	base := table.Witnesses[1]
	assert.Equal(t, uint8(sema.RequirementWitnessKindWitnessTable), base.Kind)
	require.NotNil(t, base.Table)
	assert.Equal(t, "IBase", base.Table.Interface)
	require.Len(t, base.Table.Witnesses, 1)
	assert.Equal(t, "base", base.Table.Witnesses[0].RequirementName)
	assert.NotZero(t, base.Table.Witnesses[0].Declaration)

	assert.Equal(t, "float", table.Witnesses[0].Value)
	assert.Equal(t, "4", table.Witnesses[2].Value)
	assert.Equal(t, uint8(sema.RequirementWitnessKindDeclRef), table.Witnesses[3].Kind)
}

func TestEncodeDecode(t *testing.T) {

	t.Parallel()

	checker, err := ParseAndCheck(t, program)
	require.NoError(t, err)

	document := witnesses.Export(checker)

	encoded, err := witnesses.EncodeBytes(document)
	require.NoError(t, err)

	t.Run("round trip", func(t *testing.T) {

		t.Parallel()

		decoded, err := witnesses.Decode(encoded)
		require.NoError(t, err)
		AssertEqualWithDiff(t, document, decoded)
	})

	t.Run("deterministic", func(t *testing.T) {

		t.Parallel()

		var buf bytes.Buffer
		err := witnesses.Encode(&buf, witnesses.Export(checker))
		require.NoError(t, err)
		assert.Equal(t, encoded, buf.Bytes())
	})

	t.Run("trailing data", func(t *testing.T) {

		t.Parallel()

		withTrailingData := append(append([]byte{}, encoded...), 0x00)
		_, err := witnesses.Decode(withTrailingData)
		RequireError(t, err)
	})

	t.Run("missing tag", func(t *testing.T) {

		t.Parallel()

		// an empty map without the document tag
		_, err := witnesses.Decode([]byte{0xa0})
		RequireError(t, err)
	})
}
